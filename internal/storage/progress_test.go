package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressReaderReportsRunningPercent(t *testing.T) {
	src := strings.NewReader(strings.Repeat("a", 100))

	var reports []float64
	pr := &progressReader{
		r:      src,
		total:  100,
		report: func(p float64) { reports = append(reports, p) },
	}

	buf := make([]byte, 25)
	for {
		if _, err := pr.Read(buf); err == io.EOF {
			break
		}
	}

	require.Equal(t, []float64{25, 50, 75, 100}, reports)
}

func TestProgressReaderUnknownTotal(t *testing.T) {
	src := strings.NewReader("data")

	var reports int
	pr := &progressReader{
		r:      src,
		total:  0,
		report: func(float64) { reports++ },
	}

	_, err := io.ReadAll(pr)
	require.NoError(t, err)
	require.Zero(t, reports)
}

func TestProgressReaderCountsPartialReads(t *testing.T) {
	src := chunkReader{r: strings.NewReader("abcdef"), chunk: 1}

	var last float64
	pr := &progressReader{
		r:      &src,
		total:  6,
		report: func(p float64) { last = p },
	}

	data, err := io.ReadAll(pr)
	require.NoError(t, err)
	require.Equal(t, "abcdef", string(data))
	require.Equal(t, 100.0, last)
}

// chunkReader yields at most chunk bytes per Read
type chunkReader struct {
	r     io.Reader
	chunk int
}

func (i *chunkReader) Read(buf []byte) (int, error) {
	if len(buf) > i.chunk {
		buf = buf[:i.chunk]
	}
	return i.r.Read(buf)
}
