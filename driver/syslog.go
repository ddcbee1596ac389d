package driver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// SyslogStream delivers device log lines pushed by the server over a
// websocket until Close is called or the connection drops.
type SyslogStream struct {
	conn  *websocket.Conn
	lines chan string

	mu       sync.Mutex
	closed   bool
	closeErr error
}

// StreamSyslog subscribes to the server's device log channel for this
// session.
func (d *Driver) StreamSyslog() (*SyslogStream, error) {
	wsURL := strings.Replace(d.client.BaseURL(), "http", "ws", 1)
	url := fmt.Sprintf("%s/ws/session/%s/appium/device/syslog", wsURL, d.sessionID)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to syslog stream: %w", err)
	}

	s := &SyslogStream{
		conn:  conn,
		lines: make(chan string, 64),
	}
	go s.readLoop()

	d.log.Debug("syslog stream opened")
	return s, nil
}

// Lines returns the channel of log lines. It is closed when the stream
// ends; check Err afterwards for the reason.
func (s *SyslogStream) Lines() <-chan string {
	return s.lines
}

// Err returns the error that ended the stream, or nil after a clean
// Close.
func (s *SyslogStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeErr
}

// Close tears down the websocket. Safe to call more than once.
func (s *SyslogStream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	return s.conn.Close()
}

func (s *SyslogStream) readLoop() {
	defer close(s.lines)

	for {
		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			if !s.closed {
				s.closeErr = err
				s.closed = true
				_ = s.conn.Close()
			}
			s.mu.Unlock()
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		s.lines <- string(message)
	}
}
