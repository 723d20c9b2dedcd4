package storage

import "github.com/dbcore/pagedb/internal/alias/bx"

const (
	UsernameSize = 32
	EmailSize    = 255

	idSize       = 4
	usernameSize = UsernameSize + 1
	emailSize    = EmailSize + 1

	idOffset       = 0
	usernameOffset = idOffset + idSize
	emailOffset    = usernameOffset + usernameSize

	// RowSize is the serialized size of a Row: id (4) + username (33) + email (256).
	RowSize = idSize + usernameSize + emailSize
)

// Row is the single record type this table stores.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Serialize writes r into dst at its fixed offsets. dst must be at least
// RowSize bytes. It performs no validation of field lengths; callers
// (the statement parser) enforce those bounds before a Row is built.
func Serialize(r Row, dst []byte) {
	bx.PutU32At(dst, idOffset, r.ID)
	bx.PutFixedString(dst[usernameOffset:usernameOffset+usernameSize], r.Username)
	bx.PutFixedString(dst[emailOffset:emailOffset+emailSize], r.Email)
}

// Deserialize reads a Row out of src at its fixed offsets. src must be at
// least RowSize bytes.
func Deserialize(src []byte) Row {
	return Row{
		ID:       bx.U32At(src, idOffset),
		Username: bx.FixedString(src[usernameOffset : usernameOffset+usernameSize]),
		Email:    bx.FixedString(src[emailOffset : emailOffset+emailSize]),
	}
}
