package dataset

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nnlib/internal/linalg"
	"github.com/born-ml/nnlib/internal/nn"
)

func idxImages(t *testing.T, n, rows, cols int, pixels []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range []uint32{magicImages, uint32(n), uint32(rows), uint32(cols)} {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, v))
	}
	buf.Write(pixels)
	return buf.Bytes()
}

func idxLabels(t *testing.T, labels []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(magicLabels)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(len(labels))))
	buf.Write(labels)
	return buf.Bytes()
}

func TestReadIDXImages(t *testing.T) {
	raw := idxImages(t, 2, 2, 3, []byte{
		0, 255, 51, 102, 0, 0,
		255, 255, 255, 0, 0, 0,
	})

	images, err := ReadIDXImages(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, []int{2, 3}, images[0].Shape())
	assert.InDelta(t, 1.0, images[0].At(0, 1), 1e-12)
	assert.InDelta(t, 0.2, images[0].At(0, 2), 1e-12)
	assert.InDelta(t, 0.4, images[0].At(1, 0), 1e-12)
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0}, images[1].Data())
}

func TestReadIDXImages_Errors(t *testing.T) {
	_, err := ReadIDXImages(bytes.NewReader(idxLabels(t, []byte{1})))
	assert.ErrorIs(t, err, ErrInvalidMagic)

	_, err = ReadIDXImages(bytes.NewReader(idxImages(t, 2, 2, 2, []byte{1, 2, 3, 4, 5})))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = ReadIDXImages(bytes.NewReader(idxImages(t, 1, 1, 2, []byte{1, 2, 3})))
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = ReadIDXImages(bytes.NewReader(idxImages(t, 1, 0, 2, nil)))
	assert.ErrorIs(t, err, ErrEmptyDimension)

	var huge bytes.Buffer
	for _, v := range []uint32{magicImages, 1, 0xFFFFFFFF, 0xFFFFFFFF} {
		require.NoError(t, binary.Write(&huge, binary.BigEndian, v))
	}
	_, err = ReadIDXImages(bytes.NewReader(huge.Bytes()))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = ReadIDXImages(bytes.NewReader(idxImages(t, 1, 1<<12, 1<<12+1, nil)))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = ReadIDXImages(bytes.NewReader([]byte{0, 0}))
	assert.Error(t, err)
}

func TestReadIDXLabels(t *testing.T) {
	labels, err := ReadIDXLabels(bytes.NewReader(idxLabels(t, []byte{3, 1, 4})))
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 1, 4}, labels)

	_, err = ReadIDXLabels(bytes.NewReader(idxImages(t, 0, 1, 1, nil)))
	assert.ErrorIs(t, err, ErrInvalidMagic)

	short := idxLabels(t, []byte{1, 2, 3})
	_, err = ReadIDXLabels(bytes.NewReader(short[:len(short)-1]))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = ReadIDXLabels(bytes.NewReader(append(idxLabels(t, []byte{1}), 9)))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestFromImages(t *testing.T) {
	images := []*linalg.Matrix{
		linalg.MatrixOf(2, 2, 0, 1, 0, 1),
		linalg.MatrixOf(2, 2, 1, 0, 1, 0),
	}
	data, err := FromImages(images, []byte{7, 2}, 10)
	require.NoError(t, err)
	require.Len(t, data, 2)

	assert.Equal(t, []float64{0, 1, 0, 1}, data[0].Input.Data())
	idx, err := nn.OneHotToIndex(data[0].Target)
	require.NoError(t, err)
	assert.Equal(t, 7, idx)
	assert.Equal(t, 10, data[1].Target.Len())

	_, err = FromImages(images, []byte{1}, 10)
	assert.ErrorIs(t, err, ErrCountMismatch)

	_, err = FromImages(images, []byte{1, 10}, 10)
	assert.ErrorIs(t, err, ErrLabelTooLarge)
}

func TestLoadMNIST(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "images-idx3-ubyte")
	lblPath := filepath.Join(dir, "labels-idx1-ubyte")
	require.NoError(t, os.WriteFile(imgPath, idxImages(t, 3, 2, 2, make([]byte, 12)), 0o600))
	require.NoError(t, os.WriteFile(lblPath, idxLabels(t, []byte{0, 5, 9}), 0o600))

	set, err := LoadMNIST(imgPath, lblPath)
	require.NoError(t, err)
	assert.Len(t, set.Images, 3)
	assert.Equal(t, []byte{0, 5, 9}, set.Labels)
	require.Len(t, set.Data, 3)
	assert.Equal(t, 4, set.Data[2].Input.Len())

	_, err = LoadMNIST(filepath.Join(dir, "missing"), lblPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSignData(t *testing.T) {
	data := SignData(200, rand.NewPCG(1, 2))
	require.Len(t, data, 200)

	var positives int
	for _, ex := range data {
		idx, err := nn.OneHotToIndex(ex.Target)
		require.NoError(t, err)
		if ex.Input.At(0) > 0 {
			assert.Equal(t, 0, idx)
			positives++
		} else {
			assert.Equal(t, 1, idx)
		}
	}
	assert.Greater(t, positives, 50)
	assert.Less(t, positives, 150)

	again := SignData(200, rand.NewPCG(1, 2))
	assert.True(t, data[17].Input.Equal(again[17].Input))
}

func TestDrawImage(t *testing.T) {
	img := linalg.MatrixOf(4, 3,
		1, 0, 1,
		1, 1, 0,
		0, 0, 0.6,
		0, 0.7, 0.6)

	var sb strings.Builder
	require.NoError(t, DrawImage(&sb, img))
	assert.Equal(t, "█▄▀\n ▄█\n", sb.String())

	err := DrawImage(&sb, linalg.NewMatrix(3, 3))
	assert.ErrorIs(t, err, ErrOddHeight)
}
