package idgen

import (
	"crypto/rand"
	"encoding/hex"
)

// RunPrefix tags the ID generated for each `dotup run` invocation; the ID
// shows up in debug logs and report file names so runs can be told apart.
const RunPrefix = "run-"

func New(prefix string) string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return prefix + hex.EncodeToString(bytes)
}
