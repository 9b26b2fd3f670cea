package algodft

import "github.com/cwbudde/algo-dft/internal/fftypes"

// Complex is a type constraint for complex number types supported by the
// transform: complex64 and complex128.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for the real sample types of the real-data
// transforms.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float
