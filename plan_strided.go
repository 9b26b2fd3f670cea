package algodft

// TransformStrided performs the plan's operation in place on the samples
// data[0], data[stride], ..., data[(Len()-1)*stride].
//
// The stride parameter specifies the distance between consecutive elements.
// For example, stride=numCols transforms a matrix column in row-major storage.
//
// Returns ErrNilSlice if data is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if data is too short for the given stride.
func (p *Plan[T]) TransformStrided(data []T, stride int) error {
	err := p.validateStrided(data, stride)
	if err != nil {
		return err
	}

	if stride == 1 {
		p.transform(data[:p.n])
		return nil
	}

	buf := p.getScratch()
	defer p.putScratch(buf)

	samples := (*buf)[:p.n]
	for i := range p.n {
		samples[i] = data[i*stride]
	}

	p.transform(samples)

	for i := range p.n {
		data[i*stride] = samples[i]
	}

	return nil
}

func (p *Plan[T]) validateStrided(data []T, stride int) error {
	if data == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := p.n - 1

	if maxIndex > 0 && maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(data) < required {
		return ErrLengthMismatch
	}

	return nil
}
