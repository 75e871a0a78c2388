package recording

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/orcaswarm/orcaswarm/common/utils"
)

// SingleRunRecorder buffers one run in memory and flushes it to a
// single file on Close: one metadata line followed by one line per
// recorded frame.
type SingleRunRecorder struct {
	buffer   strings.Builder
	filename string
	metadata *RunMetadata
}

func MakeSingleRunRecorder(filename string) *SingleRunRecorder {
	return &SingleRunRecorder{
		filename: filename,
		metadata: nil,
	}
}

func (r *SingleRunRecorder) RecordMetadata(metadata RunMetadata) error {
	r.metadata = &metadata

	utils.Debug("SingleRunRecorder", "created RunMetadata")

	return nil
}

func (r *SingleRunRecorder) Record(msg string) error {
	r.buffer.WriteString(msg)
	r.buffer.WriteString("\n")

	return nil
}

func (r *SingleRunRecorder) Stop() {}

func (r *SingleRunRecorder) Close() {
	if r.metadata == nil {
		panic("Missing RunMetadata")
	}

	metadata, err := json.Marshal(*r.metadata)
	utils.Check(err, "Could not serialize RunMetadata")

	file, err := os.Create(r.filename)
	utils.Check(err, "Could not create record file "+r.filename)
	defer file.Close()

	_, err = file.Write(append(metadata, '\n'))
	utils.Check(err, "Could not write record metadata")

	_, err = file.WriteString(r.buffer.String())
	utils.CheckWithFunc(err, func() string {
		return "Could not write record frames; " + err.Error()
	})

	utils.Debug("SingleRunRecorder", "wrote record file")
}
