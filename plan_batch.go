package algodft

// TransformBatch performs the plan's operation on count sequences stored
// back to back in data, each Len() samples long. The sequences are processed
// one after another on the calling goroutine.
//
// Returns ErrNilSlice if data is nil and ErrLengthMismatch if count < 0 or
// len(data) != count*Len(). No sequence is touched when an error is returned.
func (p *Plan[T]) TransformBatch(data []T, count int) error {
	if data == nil {
		return ErrNilSlice
	}

	if count < 0 || len(data) != count*p.n {
		return ErrLengthMismatch
	}

	for offset := 0; offset < len(data); offset += p.n {
		p.transform(data[offset : offset+p.n])
	}

	return nil
}
