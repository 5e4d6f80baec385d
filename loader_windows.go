//go:build windows

package vk

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func openDefaultLibrary() (uintptr, string, error) {
	names := []string{"vulkan-1.dll"}
	var paths []string
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		paths = append(paths, filepath.Join(sdk, "Bin"))
	}
	for _, name := range names {
		if h, err := windows.LoadLibrary(name); err == nil {
			return uintptr(h), name, nil
		}
		for _, dir := range paths {
			full := filepath.Join(dir, name)
			if h, err := windows.LoadLibrary(full); err == nil {
				return uintptr(h), full, nil
			}
		}
	}
	return 0, "", libNotFoundError(names, paths)
}

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func closeLibrary(lib uintptr) {
	windows.FreeLibrary(windows.Handle(lib))
}
