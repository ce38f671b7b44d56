package smsgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент шлюза доставки SMS/WhatsApp-сообщений
type Client struct {
	baseURL    string
	apiToken   string
	channel    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза
func NewClient(baseURL, apiToken, channel string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		channel:  channel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendMessage отправляет текстовое сообщение на номер телефона
func (c *Client) SendMessage(ctx context.Context, phone, text string) error {
	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	payload, err := json.Marshal(sendRequest{
		Phone:   phone,
		Text:    text,
		Channel: c.channel,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrRejected, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("SendMessage: delivered via %s, message_id=%s, status=%s", c.channel, result.MessageID, result.Status)
	return nil
}

// SendOTP отправляет одноразовый код подтверждения
func (c *Client) SendOTP(ctx context.Context, phone, code string) error {
	text := fmt.Sprintf("Ваш код подтверждения: %s. Никому его не сообщайте.", code)
	return c.SendMessage(ctx, phone, text)
}

// SendMessageWithGracefulDegradation отправляет сообщение с graceful degradation.
// Отклонение шлюзом (некорректный номер) пробрасывается как есть; недоступность
// шлюза конвертируется в ErrServiceDegraded, чтобы вызывающий мог повторить позже.
func (c *Client) SendMessageWithGracefulDegradation(ctx context.Context, phone, text string) error {
	err := c.SendMessage(ctx, phone, text)
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrRejected) {
		c.log.Warn("SendMessage: gateway rejected message to %s", phone)
		return err
	}

	c.log.Error("SMS gateway unavailable, applying graceful degradation: %v", err)
	return fmt.Errorf("%w: %v", ErrServiceDegraded, err)
}
