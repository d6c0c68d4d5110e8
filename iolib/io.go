// Package iolib provides small io helpers shared across the module.
package iolib

import "io"

// WriteFull writes buf to w, retrying until every byte is written
// or an error occurs.
func WriteFull(w io.Writer, buf []byte) (uint, error) {
	total := uint(0)
	for total < uint(len(buf)) {
		n, err := w.Write(buf[total:])
		total += uint(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
