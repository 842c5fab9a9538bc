// SPDX-License-Identifier: MIT

package lhinfo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pdfunc/uncertainty"
)

var (
	// ErrInvalidInfo is returned when the metadata is malformed or fails validation.
	ErrInvalidInfo = errors.New("lhinfo: invalid set metadata")
)

// infoValidate is the validator instance for Info, with the "errortype" rule
// registered in init.
var infoValidate *validator.Validate

func init() {
	infoValidate = validator.New()
	if err := infoValidate.RegisterValidation("errortype", validateErrorType); err != nil {
		panic(fmt.Sprintf("lhinfo: register errortype validation: %v", err))
	}
}

// validateErrorType accepts any token uncertainty.ParseErrorType accepts.
func validateErrorType(fl validator.FieldLevel) bool {
	_, err := uncertainty.ParseErrorType(fl.Field().String())
	return err == nil
}

// Info is the subset of set metadata used by the uncertainty engine.
type Info struct {
	SetDesc        string  `yaml:"SetDesc"`
	SetIndex       int     `yaml:"SetIndex" validate:"gte=0"`
	NumMembers     int     `yaml:"NumMembers" validate:"required,gte=1"`
	ErrorType      string  `yaml:"ErrorType" validate:"required,errortype"`
	ErrorConfLevel float64 `yaml:"ErrorConfLevel" validate:"omitempty,gt=0,lte=100"`
}

// Read decodes the first YAML document from r and validates it.
func Read(r io.Reader) (*Info, error) {
	var info Info
	if err := yaml.NewDecoder(r).Decode(&info); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty metadata", ErrInvalidInfo)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInfo, err)
	}
	if err := infoValidate.Struct(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInfo, err)
	}

	return &info, nil
}

// Load opens path and reads its metadata.
func Load(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lhinfo: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return info, nil
}

// Config converts the metadata into an engine configuration with the given
// replica policies. ErrorConfLevel 0 (absent) leaves the engine default.
func (i *Info) Config(central uncertainty.ReplicaCentral, interval uncertainty.ReplicaInterval) (uncertainty.Config, error) {
	et, err := uncertainty.ParseErrorType(i.ErrorType)
	if err != nil {
		return uncertainty.Config{}, fmt.Errorf("%w: %v", ErrInvalidInfo, err)
	}

	return uncertainty.Config{
		ErrorType: et,
		ConfLevel: i.ErrorConfLevel,
		Central:   central,
		Interval:  interval,
	}, nil
}

// NewSet binds the metadata to an uncertainty.Set of NumMembers members.
func (i *Info) NewSet(central uncertainty.ReplicaCentral, interval uncertainty.ReplicaInterval) (*uncertainty.Set, error) {
	cfg, err := i.Config(central, interval)
	if err != nil {
		return nil, err
	}

	return uncertainty.NewSet(i.NumMembers, cfg)
}
