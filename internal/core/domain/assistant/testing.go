package assistant

import (
	"context"
	"sync"
)

type FakeClient struct {
	Reply       string
	ReturnError bool
	Asked       []Question
	lock        sync.Mutex
}

func NewFakeClient(reply string) *FakeClient {
	return &FakeClient{Reply: reply}
}

func (c *FakeClient) Ask(ctx context.Context, question Question) (string, error) {
	if c.ReturnError {
		return "", ErrAssistantUnavailable
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.Asked = append(c.Asked, question)
	return c.Reply, nil
}
