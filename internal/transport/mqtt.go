// Package transport wraps the MQTT client that carries command payloads
// to the strips. Reconnects are left to the client; a failed publish is
// reported to the caller, never retried here.
package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Config holds broker connection settings.
type Config struct {
	Broker   string
	Port     int
	Username string
	Password string
	CAFile   string // enables TLS when set
	ClientID string
}

// MQTT publishes command payloads at QoS 1.
type MQTT struct {
	client mqtt.Client
}

// Connect dials the broker and blocks until the connection is up or fails.
func Connect(cfg Config) (*MQTT, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	c := mqtt.NewClient(opts)
	token := c.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s:%d: %w", cfg.Broker, cfg.Port, err)
	}
	return &MQTT{client: c}, nil
}

// clientOptions maps our config onto paho options. Split out for tests.
func clientOptions(cfg Config) (*mqtt.ClientOptions, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("mqtt broker not configured")
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "stripbot"
	}

	scheme := "tcp"
	if cfg.CAFile != "" {
		scheme = "ssl"
	}

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("%s://%s:%d", scheme, cfg.Broker, cfg.Port)).
		SetClientID(clientID).
		SetKeepAlive(60 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	if cfg.CAFile != "" {
		pem, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("CA file %s: no certificates found", cfg.CAFile)
		}
		opts.SetTLSConfig(&tls.Config{RootCAs: pool})
	}

	opts.OnConnect = func(mqtt.Client) {
		log.Println("[MQTT] ✅ Connected")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Printf("[MQTT] ⚠️ connection lost: %v", err)
	}
	return opts, nil
}

// Publish sends a payload at QoS 1 and waits for the client to accept it.
func (m *MQTT) Publish(topic, payload string) error {
	token := m.client.Publish(topic, 1, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker, allowing in-flight work to finish.
func (m *MQTT) Close() {
	m.client.Disconnect(250)
	log.Println("[MQTT] Connection closed")
}
