package wire

import (
	"github.com/wippyai/render-core/mounting"
)

// MutationRecord is the transferable shape of one mutation.
type MutationRecord struct {
	Type      uint8  `cbor:"1,keyasint"`
	ParentTag int32  `cbor:"2,keyasint,omitempty"`
	OldTag    int32  `cbor:"3,keyasint,omitempty"`
	NewTag    int32  `cbor:"4,keyasint,omitempty"`
	Index     int    `cbor:"5,keyasint"`
	Component string `cbor:"6,keyasint,omitempty"`
}

func recordOf(m mounting.Mutation) MutationRecord {
	record := MutationRecord{
		Type:      uint8(m.Type),
		ParentTag: int32(m.ParentView.Tag),
		OldTag:    int32(m.OldChildView.Tag),
		NewTag:    int32(m.NewChildView.Tag),
		Index:     m.Index,
	}
	switch m.Type {
	case mounting.MutationCreate, mounting.MutationInsert, mounting.MutationUpdate:
		record.Component = m.NewChildView.ComponentName
	default:
		record.Component = m.OldChildView.ComponentName
	}
	return record
}

// EncodeMutations frames a mutation list for offline inspection. The
// records preserve list order; consumers must keep it.
func EncodeMutations(mutations []mounting.Mutation) ([]byte, error) {
	records := make([]MutationRecord, len(mutations))
	for i, m := range mutations {
		records[i] = recordOf(m)
	}
	payload, err := marshal(records)
	if err != nil {
		return nil, err
	}
	return encodeFrame(MessageMutations, payload), nil
}

// DecodeMutations parses a framed mutation list back into records.
func DecodeMutations(data []byte) ([]MutationRecord, error) {
	_, payload, err := decodeFrame(data, MessageMutations)
	if err != nil {
		return nil, err
	}
	var records []MutationRecord
	if err := unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return records, nil
}
