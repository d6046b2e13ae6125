package wire

import (
	"encoding/binary"

	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/render-core/errors"
)

// Wire format constants.
const (
	HeaderSize      = 8
	Magic           = 0x5354 // ASCII 'ST'
	ProtocolVersion = 1
)

// MessageType discriminates frame payloads.
type MessageType uint8

const (
	MessageSnapshot  MessageType = 1
	MessageMutations MessageType = 2
)

// FrameHeader is the decoded fixed-size frame prefix.
type FrameHeader struct {
	Magic   uint16
	Version uint8
	Type    MessageType
	Length  uint32
}

// EncodeHeader writes an 8-byte frame header for the given message type
// and payload length.
func EncodeHeader(msgType MessageType, payloadLength uint32) []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(buf[0:2], Magic)
	buf[2] = ProtocolVersion
	buf[3] = byte(msgType)
	binary.LittleEndian.PutUint32(buf[4:8], payloadLength)
	return buf
}

// DecodeHeader parses an 8-byte frame header from data.
func DecodeHeader(data []byte) (*FrameHeader, error) {
	if len(data) < HeaderSize {
		return nil, errors.Truncated("frame header", len(data), HeaderSize)
	}

	magic := binary.BigEndian.Uint16(data[0:2])
	if magic != Magic {
		return nil, errors.BadMagic(Magic, magic)
	}

	version := data[2]
	if version != ProtocolVersion {
		return nil, errors.BadVersion(ProtocolVersion, version)
	}

	return &FrameHeader{
		Magic:   magic,
		Version: version,
		Type:    MessageType(data[3]),
		Length:  binary.LittleEndian.Uint32(data[4:8]),
	}, nil
}

// encodeFrame frames a CBOR payload.
func encodeFrame(msgType MessageType, payload []byte) []byte {
	frame := EncodeHeader(msgType, uint32(len(payload)))
	return append(frame, payload...)
}

// decodeFrame validates framing and returns the header and payload.
func decodeFrame(data []byte, want MessageType) (*FrameHeader, []byte, error) {
	header, err := DecodeHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if header.Type != want {
		return nil, nil, errors.InvalidEnum(errors.PhaseDecode, []string{"header", "type"},
			uint8(header.Type), "MessageType")
	}
	payload := data[HeaderSize:]
	if len(payload) < int(header.Length) {
		return nil, nil, errors.Truncated("frame payload", len(payload), int(header.Length))
	}
	return header, payload[:header.Length], nil
}

func marshal(v any) ([]byte, error) {
	data, err := cbor.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "marshal payload")
	}
	return data, nil
}

func unmarshal(data []byte, v any) error {
	if err := cbor.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "unmarshal payload")
	}
	return nil
}
