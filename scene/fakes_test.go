package scene

import (
	"fmt"
	"image"
)

// recording UniformStore
type uniformCall struct {
	Name  string
	Value interface{}
}

type fakeStore struct {
	calls  []uniformCall
	failOn string
}

func (f *fakeStore) SetUniform(name string, value interface{}) error {
	if f.failOn != "" && name == f.failOn {
		return fmt.Errorf("no such uniform %q", name)
	}
	f.calls = append(f.calls, uniformCall{Name: name, Value: value})
	return nil
}

// last returns the most recent value pushed under name.
func (f *fakeStore) last(name string) (interface{}, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Name == name {
			return f.calls[i].Value, true
		}
	}
	return nil, false
}

// indexOf returns the position of the first push of name, -1 if none.
func (f *fakeStore) indexOf(name string) int {
	for i, c := range f.calls {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// count returns how often name was pushed.
func (f *fakeStore) count(name string) int {
	var n int
	for _, c := range f.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// recording Uploader
type fakeUploader struct {
	next    TextureHandle
	bound   map[int]TextureHandle
	deleted []TextureHandle

	failUpload bool
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{
		next:  100,
		bound: map[int]TextureHandle{},
	}
}

func (f *fakeUploader) Upload(img *image.RGBA) (TextureHandle, error) {
	if f.failUpload {
		return 0, fmt.Errorf("upload refused")
	}
	f.next++
	return f.next, nil
}

func (f *fakeUploader) Bind(unit int, h TextureHandle) error {
	f.bound[unit] = h
	return nil
}

func (f *fakeUploader) Delete(h TextureHandle) {
	f.deleted = append(f.deleted, h)
}

// recording MeshLibrary
type fakeMeshes struct {
	loaded []Shape
	drawn  []Shape

	failLoad Shape
}

func (f *fakeMeshes) Load(s Shape) error {
	if s == f.failLoad && s != "" {
		return fmt.Errorf("load %q refused", s)
	}
	f.loaded = append(f.loaded, s)
	return nil
}

func (f *fakeMeshes) Draw(s Shape) error {
	for _, l := range f.loaded {
		if l == s {
			f.drawn = append(f.drawn, s)
			return nil
		}
	}
	return fmt.Errorf("draw of unloaded shape %q", s)
}
