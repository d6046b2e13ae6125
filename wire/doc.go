// Package wire implements the tooling wire format for shadow tree
// snapshots and mutation streams.
//
// Frames are an 8-byte header followed by a CBOR payload:
//
//	[0:2]  magic   (big-endian uint16, 0x5354 "ST")
//	[2]    version (uint8, 1)
//	[3]    type    (uint8, MessageType)
//	[4:8]  length  (little-endian uint32, payload bytes)
//
// Snapshot payloads describe a full tree; DecodeSnapshot reifies one into
// a fresh shadow tree with new families, suitable for feeding the
// differentiator. Mutation payloads flatten a mutation list for offline
// inspection.
package wire
