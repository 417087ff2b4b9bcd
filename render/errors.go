package render

import "errors"

var (
	// ErrNoBackend is returned by OpenDevice when no GPU backend is
	// registered or available on this platform.
	ErrNoBackend = errors.New("render: no GPU backend available")

	// ErrNoAdapter is returned by OpenDevice when the backend reports
	// no usable GPU adapters.
	ErrNoAdapter = errors.New("render: no GPU adapters found")

	// ErrNoDevice is returned by NewRendererFromProvider when the
	// provider does not expose a usable hal device and queue.
	ErrNoDevice = errors.New("render: provider has no hal device")

	// ErrNoCamera is returned by Render when no camera has been set.
	ErrNoCamera = errors.New("render: no camera set")

	// ErrNoFaces is returned by Render when the face list is empty.
	ErrNoFaces = errors.New("render: no faces set")

	// ErrClosed is returned by Render after Close has been called.
	ErrClosed = errors.New("render: renderer is closed")
)
