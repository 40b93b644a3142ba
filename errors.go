package fractalcolor

import "errors"

// Sentinel errors returned by CoLoringEngine and its collaborators.
var (
	// ErrBufferTooSmall is returned by Apply when out is smaller than W*H*4 bytes.
	ErrBufferTooSmall = errors.New("fractalcolor: output buffer too small")
	// ErrFieldLengthMismatch is returned by Apply when a PixelField array's
	// length does not equal RenderConfig.Width*RenderConfig.Height.
	ErrFieldLengthMismatch = errors.New("fractalcolor: pixel field array length mismatch")
	// ErrNoRegistry is returned by Apply when the engine has layers but no registry bound.
	ErrNoRegistry = errors.New("fractalcolor: no algorithm registry bound to engine")
	// ErrUnknownAlgorithm is returned by validation when an algorithm id is not registered.
	ErrUnknownAlgorithm = errors.New("fractalcolor: unknown algorithm id")
	// ErrUnknownBlendMode is returned by validation when a blend mode string is not recognized.
	ErrUnknownBlendMode = errors.New("fractalcolor: unknown blend mode")
	// ErrInvalidParam is returned by validate_params when a parameter value fails its schema.
	ErrInvalidParam = errors.New("fractalcolor: invalid parameter")
)
