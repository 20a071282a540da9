package printer

import "bytes"

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Job builds an ESC/POS byte stream around pre-formatted receipt lines.
// Layout decisions (columns, truncation, centering) happen upstream in the
// receipt composer; a Job only wraps the finished lines in device commands.
type Job struct {
	buf bytes.Buffer
}

// NewJob creates an initialized ESC/POS job.
func NewJob() *Job {
	j := &Job{}
	j.Init()
	return j
}

// Init sends the ESC @ (initialize printer) command.
func (j *Job) Init() *Job {
	j.buf.Write([]byte{ESC, '@'})
	return j
}

// LineFeed sends a line feed.
func (j *Job) LineFeed() *Job {
	j.buf.WriteByte(LF)
	return j
}

// FeedLines sends n line feeds.
func (j *Job) FeedLines(n int) *Job {
	for i := 0; i < n; i++ {
		j.buf.WriteByte(LF)
	}
	return j
}

// SetBold enables or disables bold text.
func (j *Job) SetBold(on bool) *Job {
	b := byte(0)
	if on {
		b = 1
	}
	j.buf.Write([]byte{ESC, 'E', b})
	return j
}

// SetLineSpacing sets the line spacing in motion units (ESC 3 n).
// 30 is the usual default; larger values spread the receipt out.
func (j *Job) SetLineSpacing(n byte) *Job {
	j.buf.Write([]byte{ESC, '3', n})
	return j
}

// ResetLineSpacing restores the default line spacing (ESC 2).
func (j *Job) ResetLineSpacing() *Job {
	j.buf.Write([]byte{ESC, '2'})
	return j
}

// Text writes a line of text followed by a line feed.
func (j *Job) Text(s string) *Job {
	j.buf.WriteString(s)
	j.buf.WriteByte(LF)
	return j
}

// Cut sends the paper cut command (full cut).
func (j *Job) Cut() *Job {
	j.buf.Write([]byte{GS, 'V', 0x00})
	return j
}

// PartialCut sends the partial cut command.
func (j *Job) PartialCut() *Job {
	j.buf.Write([]byte{GS, 'V', 0x01})
	return j
}

// Bytes returns the accumulated ESC/POS byte stream.
func (j *Job) Bytes() []byte {
	return j.buf.Bytes()
}

// Reset clears the buffer and reinitializes the job.
func (j *Job) Reset() *Job {
	j.buf.Reset()
	j.Init()
	return j
}
