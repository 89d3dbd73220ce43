package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions_Plain(t *testing.T) {
	opts, err := clientOptions(Config{Broker: "broker.local", Port: 1883})
	require.NoError(t, err)

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "tcp", opts.Servers[0].Scheme)
	assert.Equal(t, "broker.local:1883", opts.Servers[0].Host)
	assert.Equal(t, "stripbot", opts.ClientID)
	assert.True(t, opts.AutoReconnect)
}

func TestClientOptions_Credentials(t *testing.T) {
	opts, err := clientOptions(Config{
		Broker:   "broker.local",
		Port:     1883,
		Username: "bot",
		Password: "secret",
		ClientID: "stripbot-test",
	})
	require.NoError(t, err)

	assert.Equal(t, "bot", opts.Username)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, "stripbot-test", opts.ClientID)
}

func TestClientOptions_UnreadableCAFile(t *testing.T) {
	_, err := clientOptions(Config{Broker: "broker.local", Port: 8883, CAFile: "/nonexistent/ca.pem"})
	assert.Error(t, err, "unreadable CA file is a startup error")
}

func TestClientOptions_RequiresBroker(t *testing.T) {
	_, err := clientOptions(Config{Port: 1883})
	assert.Error(t, err)
}
