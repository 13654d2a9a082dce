package storage

import "io"

// progressReader counts bytes as the uploader drains the source and reports
// the running percentage. Clamping and monotonicity are handled by the
// Transfer, so a storage SDK that re-reads a part cannot walk progress
// backwards in the UI.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report func(percent float64)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += int64(n)
		if p.total > 0 && p.report != nil {
			p.report(float64(p.read) / float64(p.total) * 100)
		}
	}
	return n, err
}
