package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no configuration file can be found.
	ErrConfigNotFound = zerr.New("could not find scout.toml or scout.yaml")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrConfigFormatUnknown is returned when the configuration file has an unsupported extension.
	ErrConfigFormatUnknown = zerr.New("unsupported configuration format")

	// ErrUnknownOption is returned when the settings block contains an unrecognized option.
	ErrUnknownOption = zerr.New("unknown option in settings")

	// ErrUnknownPackageField is returned when a package record contains an unrecognized field.
	ErrUnknownPackageField = zerr.New("unknown package field")

	// ErrUnknownSource is returned when a package elects a source that is not registered.
	ErrUnknownSource = zerr.New("unknown source")

	// ErrDuplicateSource is returned when two sources register under the same name.
	ErrDuplicateSource = zerr.New("duplicate source registration")

	// ErrInvalidConstraint is returned when a version constraint does not compile.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrInvalidParallelism is returned when the configured parallelism is not positive.
	ErrInvalidParallelism = zerr.New("parallelism must be at least 1")

	// ErrUnknownEncoding is returned when an output format is not recognized.
	ErrUnknownEncoding = zerr.New("unknown output format")

	// ErrSourceRequestFailed is returned when a request to a source endpoint fails.
	ErrSourceRequestFailed = zerr.New("source request failed")

	// ErrSourceResponseMalformed is returned when a source response cannot be decoded.
	ErrSourceResponseMalformed = zerr.New("failed to decode source response")

	// ErrRemoteNotFound is returned when a source endpoint answers with 404.
	ErrRemoteNotFound = zerr.New("remote returned not found")

	// ErrPartialResolution is returned when at least one package could not be resolved by any source.
	ErrPartialResolution = zerr.New("some packages could not be resolved")
)
