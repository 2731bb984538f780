package domain

// FileRef identifies a file chosen by the user before it is read.
// Size is known up front so oversized files can be rejected without I/O.
type FileRef struct {
	Path string
	Size int64
}

// Media is an encoded payload ready to be shipped inline to the model.
type Media struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Size returns the payload length in bytes.
func (m Media) Size() int64 {
	return int64(len(m.Data))
}
