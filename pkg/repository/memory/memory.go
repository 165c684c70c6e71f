// Package memory provides an ephemeral in-memory repository. It backs serve
// mode, where assessment state lives only for the lifetime of the process.
package memory

import (
	"errors"

	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	assessment *assessmentRepository
	scan       *scanRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		assessment: newAssessmentRepository(),
		scan:       newScanRepository(),
	}
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Scan() interfaces.ScanRepository {
	return m.scan
}

func (m *Memory) Close() error {
	return nil
}
