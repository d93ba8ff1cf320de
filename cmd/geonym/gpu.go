//go:build gpu

package main

// Building with -tags gpu renders circles through the gogpu SDF accelerator
// when a Vulkan, Metal or DX12 adapter is available, and falls back to the
// CPU rasterizer otherwise.
import _ "github.com/gogpu/gg/gpu"
