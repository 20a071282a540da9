package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStartsWithInit(t *testing.T) {
	job := NewJob()
	assert.Equal(t, []byte{ESC, '@'}, job.Bytes())
}

func TestJobTextAppendsLineFeed(t *testing.T) {
	job := NewJob()
	job.Text("hello")
	assert.True(t, bytes.HasSuffix(job.Bytes(), []byte("hello\n")))
}

func TestJobBoldToggle(t *testing.T) {
	job := NewJob()
	job.SetBold(true).Text("TOTAL").SetBold(false)

	out := job.Bytes()
	assert.Contains(t, string(out), string([]byte{ESC, 'E', 1}))
	assert.Contains(t, string(out), string([]byte{ESC, 'E', 0}))
}

func TestJobCutCommands(t *testing.T) {
	full := NewJob().Cut().Bytes()
	assert.Equal(t, []byte{GS, 'V', 0}, full[len(full)-3:])

	partial := NewJob().FeedLines(3).PartialCut().Bytes()
	assert.Equal(t, []byte{LF, LF, LF, GS, 'V', 1}, partial[len(partial)-6:])
}

func TestJobLineSpacing(t *testing.T) {
	job := NewJob()
	job.SetLineSpacing(48)
	assert.True(t, bytes.HasSuffix(job.Bytes(), []byte{ESC, '3', 48}))

	job.ResetLineSpacing()
	assert.True(t, bytes.HasSuffix(job.Bytes(), []byte{ESC, '2'}))
}

func TestJobReset(t *testing.T) {
	job := NewJob()
	job.Text("scrap")
	job.Reset()
	assert.Equal(t, []byte{ESC, '@'}, job.Bytes())
}

func TestDummyPrinterCapturesPayload(t *testing.T) {
	p := NewDummyPrinter()
	assert.True(t, p.IsConnected())

	payload := []byte("receipt bytes")
	assert.NoError(t, p.Print(payload))
	assert.Equal(t, payload, p.LastPayload())

	// Later jobs replace the captured payload.
	assert.NoError(t, p.Print([]byte("second")))
	assert.Equal(t, []byte("second"), p.LastPayload())
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig(Config{Type: "dummy"})
	assert.NoError(t, err)
	assert.NotNil(t, p)

	p, err = NewPrinterFromConfig(Config{Type: ""})
	assert.NoError(t, err)
	assert.NotNil(t, p)

	_, err = NewPrinterFromConfig(Config{Type: "usb"})
	assert.Error(t, err) // missing device path

	_, err = NewPrinterFromConfig(Config{Type: "laser"})
	assert.Error(t, err)
}
