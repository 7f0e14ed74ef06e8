package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/proc/proctest"
)

func freeFixture() (*proc.Proc, *bytes.Buffer) {
	p, stdout, _ := proctest.New()
	p.Memory = proctest.FakeMemory(proc.MemoryInfo{
		Total:     8 << 30,
		Used:      2 << 30,
		Free:      5 << 30,
		Available: 6 << 30,
	})
	return p, stdout
}

func TestFree(t *testing.T) {
	p, stdout := freeFixture()

	code := Free(p.WithArgs([]string{"free"}))

	assert.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "Mem:")
	// 8 GiB in kilobytes.
	assert.Contains(t, out, "8388608")
}

func TestFreeHumanReadable(t *testing.T) {
	p, stdout := freeFixture()

	code := Free(p.WithArgs([]string{"free", "-h"}))

	assert.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "8.00 GB")
	assert.Contains(t, out, "2.00 GB")
}

func TestFreeHelp(t *testing.T) {
	p, stdout := freeFixture()

	code := Free(p.WithArgs([]string{"free", "--help"}))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "usage: free")
}
