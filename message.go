package rosmsg

// Message is a record type that knows its own descriptor. Every type in the msgs
// package implements it, as should any hand-written record that travels between
// implementations.
type Message interface {
	Encoder
	Decoder
	// Descriptor returns the statically declared field list of the type. It
	// must return the same pointer for every value of the type.
	Descriptor() *Descriptor
}

// MsgType returns the ROS type name of m, e.g. "rosgraph_msgs/Log".
func MsgType(m Message) string {
	return m.Descriptor().Type
}

// MD5Sum returns the MD5 sum of m's type.
func MD5Sum(m Message) string {
	return m.Descriptor().MD5Sum()
}
