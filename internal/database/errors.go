package database

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDatabaseCorrupted = errors.New("database file is corrupted")
	ErrDatabaseReadOnly  = errors.New("database is read-only")
)

type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSettingErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Key: key, Err: err}
}

// classifyOpenErr maps sqlite messages onto the package sentinels.
func classifyOpenErr(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "file is not a database"), strings.Contains(msg, "malformed"):
		return &OpError{Op: "open", Resource: "database", Err: fmt.Errorf("%w: %v", ErrDatabaseCorrupted, err)}
	case strings.Contains(msg, "readonly"), strings.Contains(msg, "read-only"):
		return &OpError{Op: "open", Resource: "database", Err: fmt.Errorf("%w: %v", ErrDatabaseReadOnly, err)}
	}
	return &OpError{Op: "open", Resource: "database", Err: err}
}
