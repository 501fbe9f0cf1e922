package main

import (
	"encoding/binary"
	"fmt"
)

// Fixed on-disk layout of a Row: a 4-byte big-endian id followed by two
// zero-padded text slots. There is no per-row header and no length prefix.
const (
	rowIDSize         = 4
	rowUsernameSize   = 32
	rowEmailSize      = 255
	rowIDOffset       = 0
	rowUsernameOffset = rowIDOffset + rowIDSize
	rowEmailOffset    = rowUsernameOffset + rowUsernameSize
	rowSize           = rowEmailOffset + rowEmailSize // 291
)

// Row is the single record type this store holds. Username must be at most
// 32 bytes and email at most 255 bytes; the parser rejects anything longer
// before a Row ever reaches the executor.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// serializeRow writes row's 291-byte on-disk form into dest starting at
// offset. dest must have at least offset+rowSize bytes available.
func serializeRow(row *Row, dest []byte, offset int) error {
	if len(row.Username) > rowUsernameSize {
		return fmt.Errorf("username exceeds %d bytes", rowUsernameSize)
	}
	if len(row.Email) > rowEmailSize {
		return fmt.Errorf("email exceeds %d bytes", rowEmailSize)
	}
	if len(dest) < offset+rowSize {
		return fmt.Errorf("destination buffer too small for row at offset %d", offset)
	}

	binary.BigEndian.PutUint32(dest[offset+rowIDOffset:], row.ID)

	username := dest[offset+rowUsernameOffset : offset+rowUsernameOffset+rowUsernameSize]
	clear(username)
	copy(username, row.Username)

	email := dest[offset+rowEmailOffset : offset+rowEmailOffset+rowEmailSize]
	clear(email)
	copy(email, row.Email)

	return nil
}

// deserializeRow reads a row back out of src at offset. A text field is the
// prefix of its slot up to (but excluding) the first zero byte; a field
// that fills its slot exactly has no terminator and is read in full.
func deserializeRow(src []byte, offset int) Row {
	id := binary.BigEndian.Uint32(src[offset+rowIDOffset:])
	username := readFixedText(src[offset+rowUsernameOffset : offset+rowUsernameOffset+rowUsernameSize])
	email := readFixedText(src[offset+rowEmailOffset : offset+rowEmailOffset+rowEmailSize])
	return Row{ID: id, Username: username, Email: email}
}

// readFixedText does not validate UTF-8; malformed bytes pass through
// verbatim, same as a garbled file read back unchecked.
func readFixedText(slot []byte) string {
	for i, b := range slot {
		if b == 0 {
			return string(slot[:i])
		}
	}
	return string(slot)
}
