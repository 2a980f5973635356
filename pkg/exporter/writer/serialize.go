package writer

// Bytes serializes the owning workbook.
func (s *Sheet) Bytes() ([]byte, error) {
	buf, err := s.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
