// Package coordinator implements the network coordinator (spec C6): the
// process-wide mode state machine, sequence-number allocator, and inbound
// packet router. Grounded on the teacher's app.LocoApp as the one
// process-wide owner of the command station connection
// (pkgs/app/main.go), generalized from a single-shot CLI action into a
// long-lived actor with an explicit Start/Stop and a serial admission
// discipline, per spec §9's "owned actor ... never a hidden global."
package coordinator

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keskad/zipgw/pkgs/command"
	"github.com/keskad/zipgw/pkgs/config"
	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/runner"
	"github.com/keskad/zipgw/pkgs/transport"
	"github.com/keskad/zipgw/pkgs/zipframe"
)

// Subscriber receives unsolicited inbound packets (no runner currently
// owns their sequence number): notifications and reports the gateway
// pushes on its own initiative. Spec §4.6: "the coordinator must expose a
// subscription seam."
type Subscriber func(zipframe.Packet)

// Coordinator is the process-wide singleton described in spec §4.6. It is
// constructed with an already-open Transport so tests can inject a
// transport.Scripted; Open builds the default UDP transport from config.
type Coordinator struct {
	transport transport.Transport
	retries   uint8
	timeout   time.Duration

	mu          sync.Mutex
	mode        command.Mode
	runners     map[byte]*runner.Runner
	subscribers []Subscriber
	seq         *seqAllocator

	stop chan struct{}
	wg   sync.WaitGroup
}

// Open builds the default UDP transport from cfg and starts a Coordinator
// over it.
func Open(cfg *config.CoordinatorConfig) (*Coordinator, error) {
	ip := net.ParseIP(cfg.GatewayIP)
	if ip == nil {
		return nil, fmt.Errorf("coordinator: invalid gateway_ip %q", cfg.GatewayIP)
	}
	tr, err := transport.Open(transport.UDPConfig{
		GatewayIP:   ip,
		GatewayPort: cfg.GatewayPort,
		LocalPort:   cfg.LocalPort,
	})
	if err != nil {
		return nil, err
	}

	c := New(tr, cfg.DefaultRetries, time.Duration(cfg.SendTimeoutMS)*time.Millisecond)
	c.Start()
	return c, nil
}

// New constructs a Coordinator over an already-open transport (e.g. a
// transport.Scripted in tests), in not_ready mode until Start is called.
func New(tr transport.Transport, defaultRetries uint8, sendTimeout time.Duration) *Coordinator {
	return &Coordinator{
		transport: tr,
		retries:   defaultRetries,
		timeout:   sendTimeout,
		mode:      command.ModeNotReady,
		runners:   make(map[byte]*runner.Runner),
		seq:       newSeqAllocator(),
		stop:      make(chan struct{}),
	}
}

// Start transitions not_ready -> idle and launches the inbound dispatch
// loop (spec: "not_ready -> idle on startup complete").
func (c *Coordinator) Start() {
	c.mu.Lock()
	c.mode = command.ModeIdle
	c.mu.Unlock()
	modeTransitionsTotal.WithLabelValues(string(command.ModeIdle)).Inc()

	c.wg.Add(1)
	go c.dispatchLoop()
}

// Stop closes the transport, returns the coordinator to not_ready and
// cancels every in-flight command, which then ends with cancelled.
func (c *Coordinator) Stop() error {
	close(c.stop)
	err := c.transport.Close()
	c.wg.Wait()

	c.mu.Lock()
	c.mode = command.ModeNotReady
	for seq, r := range c.runners {
		r.Cancel()
		delete(c.runners, seq)
	}
	c.mu.Unlock()
	return err
}

// Subscribe registers a handler for unsolicited inbound packets.
func (c *Coordinator) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, s)
}

// Mode reports the current network mode.
func (c *Coordinator) Mode() command.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// ConfigurationDone signals the explicit "configuration finished" event
// that returns the coordinator from configuring_new_node to idle (spec
// §4.6).
func (c *Coordinator) ConfigurationDone() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == command.ModeConfiguringNewNode {
		c.mode = command.ModeIdle
		modeTransitionsTotal.WithLabelValues(string(command.ModeIdle)).Inc()
	}
}

func (c *Coordinator) dispatchLoop() {
	defer c.wg.Done()
	for {
		select {
		case <-c.stop:
			return
		case datagram, ok := <-c.transport.Inbound():
			if !ok {
				c.onTransportClosed()
				return
			}
			c.handleInbound(datagram)
		}
	}
}

func (c *Coordinator) onTransportClosed() {
	c.mu.Lock()
	c.mode = command.ModeNotReady
	runners := c.runners
	c.runners = make(map[byte]*runner.Runner)
	c.mu.Unlock()

	for _, r := range runners {
		r.Cancel()
	}
	logrus.Error("coordinator: transport closed, all in-flight commands failed with transport_closed")
}

func (c *Coordinator) handleInbound(datagram []byte) {
	pkt, err := zipframe.Decode(datagram)
	if err != nil {
		logrus.Debugf("coordinator: decode_error on inbound datagram: %s", err)
		return
	}

	c.mu.Lock()
	r, ok := c.runners[pkt.SeqNumber]
	subs := c.subscribers
	c.mu.Unlock()

	if ok {
		r.Deliver(pkt)
		return
	}

	unsolicitedPacketsTotal.Inc()
	for _, s := range subs {
		s(pkt)
	}
}

// admit performs spec §4.6's admission check: current_mode must be among
// cmd.PreStates(); a mode-changing command is rejected with network_busy
// if another mode-changing command is already running. On success it
// allocates a sequence number, installs cmd's exec_state (if any), and
// registers a runner. admitErr is empty on success.
func (c *Coordinator) admit(cmd command.Command) (r *runner.Runner, admitErr command.ErrorKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	allowed := false
	for _, p := range cmd.PreStates() {
		if p == c.mode {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, command.ErrNetworkBusy
	}

	if execState, has := cmd.ExecState(); has {
		if modeChanging(c.mode) {
			return nil, command.ErrNetworkBusy
		}
		if !transitionAllowed(c.mode, execState) {
			return nil, command.ErrNetworkBusy
		}
		c.mode = execState
		modeTransitionsTotal.WithLabelValues(string(execState)).Inc()
	}

	seqNo, err := c.seq.Allocate()
	if err != nil {
		logrus.Errorf("coordinator: %s", err)
		return nil, command.ErrNetworkBusy
	}
	cmd.SetSeqNumber(seqNo)

	r = runner.New(cmd, c.transport, c.timeout)
	c.runners[seqNo] = r
	commandsInFlight.Inc()
	return r, ""
}

// release frees cmd's sequence number and, if it held a mode-changing
// exec_state, returns the coordinator to idle — unless it was a successful
// inclusion, which instead moves on to configuring_new_node (spec §4.6).
func (c *Coordinator) release(cmd command.Command, succeeded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.runners, cmd.SeqNumber())
	c.seq.Release(cmd.SeqNumber())
	commandsInFlight.Dec()

	execState, has := cmd.ExecState()
	if !has {
		return
	}
	if execState == command.ModeIncludingNode && succeeded {
		c.mode = command.ModeConfiguringNewNode
		modeTransitionsTotal.WithLabelValues(string(command.ModeConfiguringNewNode)).Inc()
		return
	}
	c.mode = command.ModeIdle
	modeTransitionsTotal.WithLabelValues(string(command.ModeIdle)).Inc()
}

// Run is the shared exercise path every public operation uses: admit,
// drive the runner to completion, release. It's exported so cmd/zipctl and
// custom SendCommand callers don't need to duplicate the admission
// bookkeeping.
func (c *Coordinator) Run(ctx context.Context, cmd command.Command) runner.Result {
	r, admitErr := c.admit(cmd)
	if admitErr != "" {
		commandsTotal.WithLabelValues(string(admitErr)).Inc()
		return runner.Result{Err: admitErr}
	}

	retriesBefore := cmd.Retries()
	result := r.Run(ctx, c.Mode, c.onQueued)
	retriesTotal.Add(float64(retriesBefore - cmd.Retries()))
	if result.Err == command.ErrCancelled && c.transport.Err() != nil {
		result.Err = command.ErrTransportClosed
	}
	c.release(cmd, result.OK)

	outcome := "ok"
	if !result.OK {
		outcome = string(result.Err)
	}
	commandsTotal.WithLabelValues(outcome).Inc()
	return result
}

func (c *Coordinator) onQueued(r *runner.Runner) {
	queuedTotal.Inc()
}

// --- public operations (spec §6) ---

func (c *Coordinator) IncludeNode(ctx context.Context, opts ...command.Option) runner.Result {
	cmd, err := command.NewNodeAdd(opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

func (c *Coordinator) ExcludeNode(ctx context.Context, opts ...command.Option) runner.Result {
	cmd, err := command.NewNodeRemove(opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

func (c *Coordinator) GetNodeList(ctx context.Context, opts ...command.Option) runner.Result {
	cmd, err := command.NewGetNodeList(opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

func (c *Coordinator) GetNodeInfo(ctx context.Context, nodeID uint8, opts ...command.Option) runner.Result {
	cmd, err := command.NewGetNodeInfo(nodeID, opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

func (c *Coordinator) SendCommand(ctx context.Context, nodeID uint8, class mappings.CommandClass, cmdByte byte, params map[string]any, opts ...command.Option) runner.Result {
	cmd, err := command.NewSendCommand(nodeID, class, cmdByte, params, opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

// ConfirmDSK answers an in-progress S2 bootstrap's node_add_dsk_report,
// confirming (accept=true) or rejecting the device's DSK (spec §4: Security-2
// key exchange). dsk is 16 raw bytes, typically produced by pkgs/dsk.Parse
// from the dash-grouped decimal form printed on the device.
func (c *Coordinator) ConfirmDSK(ctx context.Context, accept bool, dsk []byte, opts ...command.Option) runner.Result {
	cmd, err := command.NewNodeAddDSKSet(accept, dsk, opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

// ConfirmKeys answers an in-progress S2 bootstrap's node_add_keys_report,
// granting (or rejecting) the requested Security-2 network keys.
func (c *Coordinator) ConfirmKeys(ctx context.Context, accept bool, granted []mappings.SecurityKey, opts ...command.Option) runner.Result {
	cmd, err := command.NewNodeAddKeysSet(accept, granted, opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

// Provision adds dsk to the Smart Start provisioning list, so the node
// self-includes the next time it's powered on near the gateway.
func (c *Coordinator) Provision(ctx context.Context, dsk []byte, opts ...command.Option) runner.Result {
	cmd, err := command.NewProvisioningListAdd(dsk, opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}

// Unprovision removes dsk's entry from the Smart Start provisioning list.
func (c *Coordinator) Unprovision(ctx context.Context, dsk []byte, opts ...command.Option) runner.Result {
	cmd, err := command.NewProvisioningListRemove(dsk, opts...)
	if err != nil {
		return runner.Result{Err: command.ErrDecodeError}
	}
	return c.Run(ctx, cmd)
}
