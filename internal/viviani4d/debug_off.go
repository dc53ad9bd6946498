//go:build !debug
// +build !debug

package viviani4d

import (
	"fmt"
	"sync"
)

// DebugLog prints only when the Debug flag is set at runtime; build with -tags debug to always print.
func DebugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
