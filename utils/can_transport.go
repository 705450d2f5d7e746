package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"go.einride.tech/can"
	"go.einride.tech/can/pkg/socketcan"
)

// CANWriter sends actuator frames onto the robot bus.
type CANWriter interface {
	WriteFrame(ctx context.Context, frame can.Frame) error
	Close() error
}

// CANReader receives operator and feedback frames from the robot bus.
type CANReader interface {
	ReadFrame(ctx context.Context) (can.Frame, error)
	Close() error
}

var errBusClosed = errors.New("can bus closed")

// SocketCANBus sends and receives on one SocketCAN socket. Received frames
// are pumped by a single goroutine so ReadFrame can honor cancellation.
type SocketCANBus struct {
	iface string
	conn  net.Conn
	tx    *socketcan.Transmitter

	frames chan can.Frame
	done   chan struct{}
	quit   chan struct{}
	once   sync.Once
	err    error
}

func DialSocketCAN(ctx context.Context, iface string) (*SocketCANBus, error) {
	conn, err := socketcan.DialContext(ctx, "can", iface)
	if err != nil {
		return nil, fmt.Errorf("socketcan dial %s: %w", iface, err)
	}
	b := &SocketCANBus{
		iface:  iface,
		conn:   conn,
		tx:     socketcan.NewTransmitter(conn),
		frames: make(chan can.Frame, 64),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}
	go b.pump(socketcan.NewReceiver(conn))
	return b, nil
}

func (b *SocketCANBus) pump(recv *socketcan.Receiver) {
	defer close(b.done)
	for recv.Receive() {
		if recv.HasErrorFrame() {
			continue
		}
		select {
		case b.frames <- recv.Frame():
		case <-b.quit:
			b.err = errBusClosed
			return
		}
	}
	select {
	case <-b.quit:
		b.err = errBusClosed
	default:
		b.err = fmt.Errorf("%s: receive stopped: %v", b.iface, recv.Err())
	}
}

func (b *SocketCANBus) WriteFrame(ctx context.Context, frame can.Frame) error {
	return b.tx.TransmitFrame(ctx, frame)
}

// ReadFrame blocks until a frame arrives, the receiver stops, or ctx is done.
func (b *SocketCANBus) ReadFrame(ctx context.Context) (can.Frame, error) {
	select {
	case <-ctx.Done():
		return can.Frame{}, ctx.Err()
	case frame := <-b.frames:
		return frame, nil
	case <-b.done:
		return can.Frame{}, b.err
	}
}

// Close is safe to call more than once.
func (b *SocketCANBus) Close() error {
	var err error
	b.once.Do(func() {
		close(b.quit)
		err = b.conn.Close()
	})
	return err
}
