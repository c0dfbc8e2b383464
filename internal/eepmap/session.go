package eepmap

import (
	"fmt"

	"github.com/retroenv/eepdump/internal/layout"
	"github.com/retroenv/eepdump/internal/source"
	"github.com/retroenv/retrogolib/log"
)

type state int

const (
	stateEmpty state = iota
	stateFilled
	stateValidated
	stateFailed
)

// Session owns the EEPROM image of one dump run. It is not safe for
// concurrent use, independent sessions share nothing.
type Session struct {
	logger *log.Logger
	source source.WordReader
	image  *layout.Image
	state  state

	swapped bool
	result  Result
}

// NewSession returns a new session reading from the given source.
func NewSession(logger *log.Logger, src source.WordReader) *Session {
	return &Session{
		logger: logger,
		source: src,
	}
}

// Image returns the image of a filled session or nil.
func (s *Session) Image() *layout.Image {
	return s.image
}

// Validated returns whether the image passed validation.
func (s *Session) Validated() bool {
	return s.state == stateValidated
}

// Swapped returns whether the image was converted from the opposite byte order.
func (s *Session) Swapped() bool {
	return s.swapped
}

// ValidatedImage returns the image if it passed validation.
func (s *Session) ValidatedImage() (*layout.Image, error) {
	if s.state != stateValidated {
		return nil, ErrNotValidated
	}
	return s.image, nil
}

// Fill reads size/2 consecutive words starting at the base word address
// into a new session image. On failure the image is discarded.
func (s *Session) Fill(chip string, base uint32, size int) error {
	img, err := layout.NewImage(size)
	if err != nil {
		return fmt.Errorf("creating image: %w", err)
	}

	s.image = nil
	s.state = stateEmpty
	s.swapped = false
	s.result = Result{}

	for index := 0; index < img.Words(); index++ {
		word, err := s.source.ReadWord(base + uint32(index))
		if err != nil {
			return &FillError{Chip: chip, Err: err}
		}
		img.SetWord(index, word)
	}

	s.logger.Debug("Filled EEPROM image",
		log.String("chip", chip),
		log.Hex("base", base),
		log.Int("words", img.Words()))

	s.image = img
	s.state = stateFilled
	return nil
}
