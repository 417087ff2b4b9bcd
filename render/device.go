package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vox"
)

// DeviceHandle provides GPU device access from a host application.
//
// Hosts that already own a GPU context (a windowed app, a larger
// engine) implement DeviceHandle and pass it to
// NewRendererFromProvider, so the face renderer shares their device
// instead of creating a second one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, keeping this
// package compatible with the gpucontext ecosystem under a local name.
type DeviceHandle = gpucontext.DeviceProvider

// Device bundles a standalone hal device and queue opened by
// OpenDevice, along with the instance that owns them.
type Device struct {
	Device hal.Device
	Queue  hal.Queue

	instance hal.Instance
}

// Close releases the device and its owning instance. Renderers created
// from this device must be closed first.
func (d *Device) Close() {
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	d.Device = nil
	d.Queue = nil
}

// OpenDevice acquires a standalone GPU device for offscreen rendering.
// This is the path for callers with no host GPU context: it picks the
// Vulkan backend, prefers a discrete or integrated adapter, and opens
// it with default limits.
func OpenDevice() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	vox.Logger().Info("render: GPU device opened", "adapter", selected.Info.Name)
	return &Device{
		Device:   openDev.Device,
		Queue:    openDev.Queue,
		instance: instance,
	}, nil
}

// halFromProvider extracts the hal device and queue from a provider
// that exposes them. Providers backed by a hal device implement
// HalDevice() any and HalQueue() any alongside the gpucontext surface.
func halFromProvider(provider DeviceHandle) (hal.Device, hal.Queue, error) {
	hp, ok := provider.(interface {
		HalDevice() any
		HalQueue() any
	})
	if !ok {
		return nil, nil, ErrNoDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, ErrNoDevice
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, ErrNoDevice
	}
	return device, queue, nil
}
