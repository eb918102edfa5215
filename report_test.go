package assetgen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_PlainOutputForBuffers(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.TaskStarted(2, 5, crabTask)
	r.Attempt(crabTask, 1)
	r.Error(errors.New("timeout"))
	r.NoImage()
	r.Saved(crabTask, 4096)
	r.GaveUp(crabTask, 3)

	assert.Equal(t,
		"[2/5] Crab Sprite Sheet\n"+
			"  Generating: crab-sheet.png (attempt 1)...\n"+
			"  ✗ Error: timeout\n"+
			"  ✗ No image in response\n"+
			"  ✓ Saved crab-sheet.png (4KB)\n"+
			"  ✗ Giving up on crab-sheet.png after 3 attempts\n",
		buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}
