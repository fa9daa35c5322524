package plytest

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_ASCII(t *testing.T) {
	data := New("ascii").
		Comment("made by test").
		Element("vertex", 1, "float x").
		Rows("1.5").
		Bytes()

	require.Equal(t, "ply\nformat ascii 1.0\ncomment made by test\nelement vertex 1\nproperty float x\nend_header\n1.5\n", string(data))
}

func TestBuilder_BinaryOrder(t *testing.T) {
	le := New("binary_little_endian").Element("v", 1, "ushort a").Values(uint16(0x0102))
	be := New("binary_big_endian").Element("v", 1, "ushort a").Values(uint16(0x0102))

	require.Equal(t, []byte{0x02, 0x01}, le.Bytes()[len(le.Header()):])
	require.Equal(t, []byte{0x01, 0x02}, be.Bytes()[len(be.Header()):])
	require.Len(t, be.Truncated(1), len(be.Header())+1)

	var v uint16
	require.NoError(t, binary.Read(bytes.NewReader(be.Bytes()[len(be.Header()):]), binary.BigEndian, &v))
	require.Equal(t, uint16(0x0102), v)
}

func TestFailingReader(t *testing.T) {
	r := NewFailingReader([]byte("abc"))
	buf := make([]byte, 2)

	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = r.Read(buf)
	require.ErrorIs(t, err, ErrInjected)
}

func TestTrackingReader(t *testing.T) {
	tr := NewTrackingReader(bytes.NewReader([]byte("ply")))
	_, err := tr.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.NoError(t, tr.Close())
	require.Equal(t, 1, tr.Seeks)
	require.Equal(t, 1, tr.Closes)
}
