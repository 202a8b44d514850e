package redis

import (
	"bufio"
	"bytes"
	"errors"
	"strconv"
	"strings"
)

// maxBulkLen bounds bulk string lengths and array counts, as Redis'
// proto-max-bulk-len does.
const maxBulkLen = 512 << 20

var (
	crlf        = []byte("\r\n")
	errProtocol = errors.New("ERR Protocol error")
)

// readLength reads the "<prefix><n>\r\n" header at the start of data. n is
// 0 while the header is incomplete.
func readLength(data []byte, prefix byte) (length, n int, err error) {
	if len(data) == 0 {
		return 0, 0, nil
	}
	if data[0] != prefix {
		return 0, 0, errProtocol
	}
	i := bytes.Index(data[1:], crlf)
	if i < 0 {
		return 0, 0, nil
	}
	length, err = strconv.Atoi(string(data[1 : i+1]))
	if err != nil || length < 0 || length > maxBulkLen {
		return 0, 0, errProtocol
	}
	return length, i + 3, nil
}

// scanBulkString returns the payload of the bulk string at the start of
// data and the number of bytes it spans. n is 0 while the bulk string is
// incomplete.
func scanBulkString(data []byte) (payload []byte, n int, err error) {
	length, hdr, err := readLength(data, '$')
	if err != nil || hdr == 0 {
		return nil, 0, err
	}
	if length > len(data)-hdr-2 {
		return nil, 0, nil
	}
	end := hdr + length
	if data[end] != '\r' || data[end+1] != '\n' {
		return nil, 0, errProtocol
	}
	return data[hdr:end], end + 2, nil
}

// scanArray returns the elements of the array of bulk strings at the start
// of data and the number of bytes it spans. n is 0 while the array is
// incomplete.
func scanArray(data []byte) (elems [][]byte, n int, err error) {
	count, n, err := readLength(data, '*')
	if err != nil || n == 0 {
		return nil, 0, err
	}
	elems = make([][]byte, 0, min(count, 64))
	for len(elems) < count {
		payload, m, err := scanBulkString(data[n:])
		if err != nil || m == 0 {
			return nil, 0, err
		}
		elems = append(elems, payload)
		n += m
	}
	return elems, n, nil
}

// splitMessage is a bufio.SplitFunc cutting a client stream into requests.
//
// Clients send commands as arrays of bulk strings, several of them
// back to back when pipelining. Anything that does not start like an array
// is treated as an inline command terminated by a newline.
func splitMessage(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if data[0] == '*' {
		_, n, err := scanArray(data)
		switch {
		case err == nil && n > 0:
			return n, data[:n], nil
		case err == nil && atEOF:
			return len(data), data, bufio.ErrFinalToken
		case err == nil:
			// request more data
			return 0, nil, nil
		}
		// malformed array, let the decoder report it
	}
	return bufio.ScanLines(data, atEOF)
}

// decodeRequest turns a request cut by splitMessage into its arguments.
func decodeRequest(b []byte) ([]string, error) {
	if len(b) > 0 && b[0] == '*' {
		elems, n, err := scanArray(b)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errProtocol
		}
		args := make([]string, len(elems))
		for i, e := range elems {
			args[i] = string(e)
		}
		return args, nil
	}
	return strings.Fields(string(b)), nil
}
