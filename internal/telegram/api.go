package telegram

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stripbot/stripbot/internal/menu"
)

// defaultAPIBase is the Bot API endpoint; tests point it at a stub server.
const defaultAPIBase = "https://api.telegram.org"

// apiCall posts a Bot API method and decodes the response envelope.
func (c *Channel) apiCall(method string, params map[string]any) (map[string]any, error) {
	url := fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.token, method)
	body, _ := json.Marshal(params)
	req, err := http.NewRequest("POST", url, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", method, err)
	}
	if ok, _ := result["ok"].(bool); !ok {
		desc, _ := result["description"].(string)
		return result, fmt.Errorf("%s: %s", method, desc)
	}
	return result, nil
}

// inlineKeyboard converts a menu keyboard into the Bot API reply_markup
// shape.
func inlineKeyboard(m menu.Menu) map[string]any {
	rows := make([][]map[string]string, 0, len(m.Keyboard))
	for _, row := range m.Keyboard {
		line := make([]map[string]string, 0, len(row))
		for _, b := range row {
			line = append(line, map[string]string{
				"text":          b.Label,
				"callback_data": b.Token,
			})
		}
		rows = append(rows, line)
	}
	return map[string]any{"inline_keyboard": rows}
}

func (c *Channel) sendMenu(chatID int64, m menu.Menu) error {
	_, err := c.apiCall("sendMessage", map[string]any{
		"chat_id":      chatID,
		"text":         m.Text,
		"reply_markup": inlineKeyboard(m),
	})
	return err
}

func (c *Channel) editMenu(chatID int64, messageID int, m menu.Menu) error {
	_, err := c.apiCall("editMessageText", map[string]any{
		"chat_id":      chatID,
		"message_id":   messageID,
		"text":         m.Text,
		"reply_markup": inlineKeyboard(m),
	})
	return err
}

func (c *Channel) answerCallback(callbackID, text string, alert bool) error {
	params := map[string]any{
		"callback_query_id": callbackID,
		"show_alert":        alert,
	}
	if text != "" {
		params["text"] = text
	}
	_, err := c.apiCall("answerCallbackQuery", params)
	return err
}

func (c *Channel) sendText(chatID int64, text string) error {
	_, err := c.apiCall("sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
	return err
}
