/*
Package msgs provides the standard ROS message types the rest of the module and
its tests exchange with other implementations: std_msgs/Header, std_msgs/String,
std_msgs/Empty, rosgraph_msgs/Log and rosgraph_msgs/Clock.

Each type declares its field order once, in its Descriptor, and its Encode and
Decode methods walk the fields in exactly that order. The descriptors are
registered with rosmsg.RegisterDescriptor when the package is imported, and
their MD5 sums match the published ROS definitions.
*/
package msgs

import "github.com/rostygo/rosmsg"

func init() {
	for _, d := range []*rosmsg.Descriptor{
		HeaderDescriptor,
		StringDescriptor,
		EmptyDescriptor,
		LogDescriptor,
		ClockDescriptor,
	} {
		rosmsg.RegisterDescriptor(d)
	}
}
