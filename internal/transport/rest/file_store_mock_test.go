package rest

import (
	"context"
	"io"
	"sync"

	"github.com/spf13/afero"

	"github.com/heartmarshall/dms-backend/internal/adapter/filestore"
)

var _ fileStore = &fileStoreMock{}

type fileStoreMock struct {
	SaveFunc   func(ctx context.Context, name string, r io.Reader) (string, error)
	StatFunc   func(ctx context.Context, ref string) (filestore.FileInfo, error)
	OpenFunc   func(ctx context.Context, ref string) (afero.File, error)
	RemoveFunc func(ctx context.Context, ref string) error
	URLFunc    func(ref string) string

	calls struct {
		Save []struct {
			Ctx  context.Context
			Name string
			R    io.Reader
		}
		Stat []struct {
			Ctx context.Context
			Ref string
		}
		Open []struct {
			Ctx context.Context
			Ref string
		}
		Remove []struct {
			Ctx context.Context
			Ref string
		}
		URL    []struct{ Ref string }
	}
	lockSave   sync.RWMutex
	lockStat   sync.RWMutex
	lockOpen   sync.RWMutex
	lockRemove sync.RWMutex
	lockURL    sync.RWMutex
}

func (mock *fileStoreMock) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if mock.SaveFunc == nil {
		panic("fileStoreMock.SaveFunc: method is nil but fileStore.Save was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		R    io.Reader
	}{Ctx: ctx, Name: name, R: r}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, name, r)
}

func (mock *fileStoreMock) SaveCalls() []struct {
	Ctx  context.Context
	Name string
	R    io.Reader
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *fileStoreMock) Stat(ctx context.Context, ref string) (filestore.FileInfo, error) {
	if mock.StatFunc == nil {
		panic("fileStoreMock.StatFunc: method is nil but fileStore.Stat was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref string
	}{Ctx: ctx, Ref: ref}
	mock.lockStat.Lock()
	mock.calls.Stat = append(mock.calls.Stat, callInfo)
	mock.lockStat.Unlock()
	return mock.StatFunc(ctx, ref)
}

func (mock *fileStoreMock) StatCalls() []struct {
	Ctx context.Context
	Ref string
} {
	mock.lockStat.RLock()
	calls := mock.calls.Stat
	mock.lockStat.RUnlock()
	return calls
}

func (mock *fileStoreMock) Open(ctx context.Context, ref string) (afero.File, error) {
	if mock.OpenFunc == nil {
		panic("fileStoreMock.OpenFunc: method is nil but fileStore.Open was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref string
	}{Ctx: ctx, Ref: ref}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, ref)
}

func (mock *fileStoreMock) OpenCalls() []struct {
	Ctx context.Context
	Ref string
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *fileStoreMock) Remove(ctx context.Context, ref string) error {
	if mock.RemoveFunc == nil {
		panic("fileStoreMock.RemoveFunc: method is nil but fileStore.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref string
	}{Ctx: ctx, Ref: ref}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, ref)
}

func (mock *fileStoreMock) RemoveCalls() []struct {
	Ctx context.Context
	Ref string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *fileStoreMock) URL(ref string) string {
	if mock.URLFunc == nil {
		panic("fileStoreMock.URLFunc: method is nil but fileStore.URL was just called")
	}
	callInfo := struct{ Ref string }{Ref: ref}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(ref)
}

func (mock *fileStoreMock) URLCalls() []struct{ Ref string } {
	mock.lockURL.RLock()
	calls := mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}
