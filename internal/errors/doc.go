// Package errors provides the structured errors used outside the entity core.
//
// The general and skill types never fail: a missing asset, translation or
// registry entry is an absence value. Everything that touches I/O (package
// files, locale catalogs, redis, configuration, the CLI) returns an *Error
// carrying a Code, a message and optional metadata.
//
// Creating errors:
//
//	err := errors.NotFoundf("general %s not found", name)
//	err := errors.InvalidArgument("package name is required").
//	    WithMeta("path", path)
//
// Wrapping keeps the code of an *Error cause and defaults to Internal otherwise:
//
//	if err := yaml.Unmarshal(data, &file); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed package file")
//	}
//
// Config structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("locale", cfg.Locale, vb)
//	return vb.Build()
//
// The CLI maps codes to process exit status with Code.ExitCode.
package errors
