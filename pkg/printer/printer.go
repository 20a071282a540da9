package printer

import (
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"go.bug.st/serial"
)

// Printer is the interface for delivering raw ESC/POS data to a thermal
// printer. One variant exists per transport; selection happens once at
// startup from configuration, never inside rendering code.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected returns true if the printer connection is active.
	IsConnected() bool
}

// Config selects and parameterizes the printer transport.
type Config struct {
	Type       string // "usb", "serial", "network", "dummy" or "none"
	USBPath    string // device file for USB printers, e.g. /dev/usb/lp0
	SerialPort string // serial port name, e.g. /dev/ttyUSB0 or COM1
	BaudRate   int    // serial baud rate, defaults to 9600
	Address    string // TCP address for network printers, e.g. 192.168.1.100:9100
}

// --- USB Printer (writes to device file, e.g. /dev/usb/lp0) ---

type usbPrinter struct {
	path string
}

// NewUSBPrinter creates a printer that writes to a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error {
	return nil // USB printer opens/closes per print job
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// --- Serial Printer (COM port / ttyUSB) ---

type serialPrinter struct {
	port string
	baud int
}

// NewSerialPrinter creates a printer that writes to a serial port.
func NewSerialPrinter(port string, baudRate int) Printer {
	if baudRate <= 0 {
		baudRate = 9600
	}
	return &serialPrinter{port: port, baud: baudRate}
}

func (p *serialPrinter) Print(data []byte) error {
	conn, err := serial.Open(p.port, &serial.Mode{BaudRate: p.baud})
	if err != nil {
		return fmt.Errorf("printer: failed to open serial port %s: %w", p.port, err)
	}
	defer conn.Close()

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to serial port %s: %w", p.port, err)
	}
	return conn.Drain()
}

func (p *serialPrinter) Close() error {
	return nil // Serial printer opens/closes per print job
}

func (p *serialPrinter) IsConnected() bool {
	ports, err := serial.GetPortsList()
	if err != nil {
		return false
	}
	for _, port := range ports {
		if port == p.port {
			return true
		}
	}
	return false
}

// --- Network Printer (dials TCP, e.g. 192.168.1.100:9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter creates a printer that connects via TCP.
// Address should include port, e.g. "192.168.1.100:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil // Network printer opens/closes per print job
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Dummy Printer (captures payloads, used without hardware and in tests) ---

// DummyPrinter is the no-hardware transport; LastPayload exposes the most
// recently printed bytes for inspection.
type DummyPrinter struct {
	mu   sync.Mutex
	last []byte
}

// NewDummyPrinter creates a printer that records the last payload in memory.
func NewDummyPrinter() *DummyPrinter {
	return &DummyPrinter{}
}

func (p *DummyPrinter) Print(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = append(p.last[:0], data...)
	return nil
}

func (p *DummyPrinter) Close() error {
	return nil
}

func (p *DummyPrinter) IsConnected() bool {
	return true
}

// LastPayload returns a copy of the most recently printed bytes.
func (p *DummyPrinter) LastPayload() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]byte, len(p.last))
	copy(out, p.last)
	return out
}

// NewPrinterFromConfig creates the appropriate Printer based on the configured
// transport type.
func NewPrinterFromConfig(cfg Config) (Printer, error) {
	switch cfg.Type {
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB printer type")
		}
		return NewUSBPrinter(cfg.USBPath), nil
	case "serial":
		if cfg.SerialPort == "" {
			return nil, fmt.Errorf("printer: serial port is required for serial printer type")
		}
		return NewSerialPrinter(cfg.SerialPort, cfg.BaudRate), nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(cfg.Address), nil
	case "dummy", "none", "":
		return NewDummyPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, serial, network, or dummy)", cfg.Type)
	}
}
