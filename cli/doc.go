// SPDX-License-Identifier: MIT

// Package cli builds the assign command tree.
//
//	assign solve --input FILE [--direction min|max] [--method cover|potentials]
//	             [--format table|csv|json] [--output FILE] [--max-size N]
//	assign example [--format ...] [--method ...] [--save FILE]
//
// Global flags: --log-level (debug|info|warn|error) and --env-file (default
// ".env", loaded when present; an empty value skips it).
//
// Settings resolve as flag, then environment (ASSIGN_FORMAT, ASSIGN_METHOD,
// ASSIGN_MAX_SIZE, ASSIGN_LOG_LEVEL), then default. Commands return their
// errors; the caller logs them.
package cli
