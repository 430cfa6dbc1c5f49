/*
Package iterators provide iterator implementations and the latch adapter.

# Summary

An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
Most commonly, iterators hide whether the data comes from a slice, standard input, or elsewhere.
This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
while still allowing for the composition and various actions on the received data stream.
An Iterator represents an iterable list of element,
which length is not known until it is fully iterated, thus can range from zero to infinity.

# Latch

Latch wraps an Iterator and only lets through the windows of the stream
that begin with an element matching the start predicate
and end with an element matching the stop predicate.
Both boundary elements are part of the window.
After a window is closed, the latch goes back to scanning for the next start element,
so a single stream can produce any number of windows.

	iter := iterators.Latch(ranges.Int(1, 24),
		func(n int) bool { return n%5 == 0 },
		func(n int) bool { return n%7 == 0 })
	// 5, 6, 7, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21

Nothing is pulled from the source iterator until Next is called.

# Resources

https://en.wikipedia.org/wiki/Iterator_pattern
https://en.wikipedia.org/wiki/Pipeline_(software)
*/
package iterators
