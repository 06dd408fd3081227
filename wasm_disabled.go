//go:build !(js && wasm)

package main

import "os"

func WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}
