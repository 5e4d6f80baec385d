//go:build linux || darwin || freebsd

package vk

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

func platformLibraryNames() ([]string, []string) {
	var names []string
	var paths []string
	switch runtime.GOOS {
	case "darwin":
		names = []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}
		paths = []string{"/usr/local/lib", "/opt/homebrew/lib"}
	default:
		names = []string{"libvulkan.so.1", "libvulkan.so"}
		paths = []string{
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib64",
			"/usr/lib",
			"/usr/local/lib",
		}
	}
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		paths = append([]string{filepath.Join(sdk, "lib")}, paths...)
	}
	return names, paths
}

func openDefaultLibrary() (uintptr, string, error) {
	names, paths := platformLibraryNames()
	for _, name := range names {
		// A bare name lets the dynamic linker search LD_LIBRARY_PATH first.
		if lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
			return lib, name, nil
		}
		for _, dir := range paths {
			full := filepath.Join(dir, name)
			if _, err := os.Stat(full); err != nil {
				continue
			}
			if lib, err := purego.Dlopen(full, purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
				return lib, full, nil
			}
		}
	}
	return 0, "", libNotFoundError(names, paths)
}

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func closeLibrary(lib uintptr) {
	purego.Dlclose(lib)
}
