package topic

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMaterialize_EmptyPathIsAbsent(t *testing.T) {
	for _, inline := range []bool{true, false} {
		opened := false
		m := NewImageMaterializer(inline, func(string) (io.ReadCloser, error) {
			opened = true
			return nil, errors.New("unexpected")
		})

		data, err := m.Materialize("")
		assert.NoError(t, err)
		assert.Nil(t, data)
		assert.False(t, opened)
	}
}

func TestMaterialize_ReferenceModeDoesNoIO(t *testing.T) {
	m := NewImageMaterializer(false, func(string) (io.ReadCloser, error) {
		t.Fatal("opener must not be called in reference mode")
		return nil, nil
	})

	data, err := m.Materialize("/does/not/exist.png")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestMaterialize_InlineRoundTrip(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x10, 0x20}
	path := writeImage(t, "pic.png", raw)

	m := NewImageMaterializer(true, nil)
	data, err := m.Materialize(path)
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.True(t, strings.HasPrefix(*data, "data:image/"))
	assert.Equal(t, 1, strings.Count(*data, ";base64,"))

	parts := strings.SplitN(*data, ";base64,", 2)
	assert.Equal(t, "data:image/png", parts[0])
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	again, err := m.Materialize(path)
	require.NoError(t, err)
	assert.Equal(t, *data, *again)
}

func TestMaterialize_UnknownExtensionKeepsBareImagePrefix(t *testing.T) {
	path := writeImage(t, "pic.JPG", []byte("abc"))

	data, err := NewImageMaterializer(true, nil).Materialize(path)
	require.NoError(t, err)
	assert.Equal(t, "data:image/;base64,YWJj", *data)
}

func TestMaterialize_EmptyFile(t *testing.T) {
	path := writeImage(t, "empty.gif", nil)

	data, err := NewImageMaterializer(true, nil).Materialize(path)
	require.NoError(t, err)
	assert.Equal(t, "data:image/gif;base64,", *data)
}

func TestMaterialize_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.jpg")

	data, err := NewImageMaterializer(true, nil).Materialize(missing)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type trackingReader struct {
	readErr error
	closed  bool
}

func (r *trackingReader) Read(p []byte) (int, error) {
	if r.readErr != nil {
		return 0, r.readErr
	}
	return 0, io.EOF
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func TestMaterialize_ReleasesHandleOnReadFailure(t *testing.T) {
	rc := &trackingReader{readErr: errors.New("disk error")}
	m := NewImageMaterializer(true, func(string) (io.ReadCloser, error) { return rc, nil })

	_, err := m.Materialize("x.png")
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.True(t, rc.closed)
}

func TestMaterialize_ReleasesHandleOnSuccess(t *testing.T) {
	rc := &trackingReader{}
	m := NewImageMaterializer(true, func(string) (io.ReadCloser, error) { return rc, nil })

	data, err := m.Materialize("x.png")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,", *data)
	assert.True(t, rc.closed)
}
