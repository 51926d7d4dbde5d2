// Package framebuffer draws panels onto a Linux framebuffer device
// (/dev/fbN) by mapping its memory.
//
// 16 bit RGB565 devices are written as is, other depths are converted using
// the channel layout reported by the device. Panels are centered
// horizontally.
package framebuffer

const Name = `framebuffer`
