/*
Package schedbridge bridges byte-encoded scheduler commands onto a
Mesos-style scheduler driver and turns the driver's callbacks back
into byte-encoded events for a host mailbox. The host never touches
driver types: commands carry payloads encoded with the bridge Codec,
and every callback arrives as a tagged Event whose payloads decode
with the same codec.
*/
package schedbridge

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Recipient is the destination of every event a bridge handle
// produces. Deliver must not block; it runs on driver callback
// goroutines. Mailbox is the stock implementation.
type Recipient interface {
	Deliver(ev Event)
}

// Config adjusts how Init builds a handle. The zero value uses
// DefaultCodec and the HTTP driver.
type Config struct {
	Codec     Codec
	NewDriver DriverFactory
}

/*
Handle owns one driver and its event dispatcher. It is created by
Init and released by Destroy; every command operation requires a live
handle. A Handle is not a registry entry, there is nothing to look
up: the caller holds the only reference.
*/
type Handle struct {
	id         string
	codec      Codec
	driver     Driver
	dispatcher *eventDispatcher
	destroyed  atomic.Bool
}

// Init builds a handle with the zero Config. See Config.Init.
func Init(recipient Recipient, frameworkInfo []byte, master string, credential []byte) (*Handle, error) {
	return Config{}.Init(recipient, frameworkInfo, master, credential)
}

/*
Init decodes the FrameworkInfo payload and the optional Credential
payload, builds the driver through the configured factory, and binds
every callback of that driver to recipient. A payload that fails to
decode returns a *DecodeError and no driver is constructed. The
returned handle must eventually be released with Destroy.
*/
func (cfg Config) Init(recipient Recipient, frameworkInfo []byte, master string, credential []byte) (*Handle, error) {
	if recipient == nil {
		panic("schedbridge: Init with nil recipient")
	}

	c := cfg.Codec
	if c == nil {
		c = DefaultCodec
	}
	newDriver := cfg.NewDriver
	if newDriver == nil {
		newDriver = httpDriverFactory
	}

	framework, err := decodePayload[FrameworkInfo](c, frameworkInfo, "FrameworkInfo")
	if err != nil {
		return nil, err
	}
	cred, err := decodeOptionalPayload[Credential](c, credential, "Credential")
	if err != nil {
		return nil, err
	}

	dispatcher := newEventDispatcher(recipient, c)
	driver, err := newDriver(dispatcher, framework, master, cred, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create the scheduler driver: %w", err)
	}

	handle := &Handle{
		id:         uuid.NewString(),
		codec:      c,
		driver:     driver,
		dispatcher: dispatcher,
	}
	log.Infof("Initialized bridge handle [%s] for framework [%s] on master [%s].", handle.id, framework.Name, master)
	return handle, nil
}

// ID returns the handle's identity token, useful in host logs.
func (handle *Handle) ID() string {
	return handle.id
}

/*
Destroy releases the handle's driver and event dispatcher, each
exactly once. It must only be called after the driver has terminated
(a terminal status or a returned Join); callbacks still in flight are
dropped, not delivered. Using the handle after Destroy panics.
*/
func (handle *Handle) Destroy() error {
	handle.assertLive("Destroy")
	handle.destroyed.Store(true)

	err := handle.driver.Close()
	handle.dispatcher.close()
	if err != nil {
		log.Errorf("Destroyed bridge handle [%s], driver close reported: %v", handle.id, err)
		return err
	}
	log.Infof("Destroyed bridge handle [%s].", handle.id)
	return nil
}

func (handle *Handle) assertLive(op string) {
	if handle == nil {
		panic("schedbridge: " + op + " on nil handle")
	}
	if handle.destroyed.Load() {
		panic("schedbridge: " + op + " on destroyed handle")
	}
}
