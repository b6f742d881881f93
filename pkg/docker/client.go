package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// Client wraps the Docker SDK client for container discovery.
type Client struct {
	cli *client.Client
}

// NewClient creates a Docker client from the environment and verifies the
// daemon is reachable.
func NewClient(ctx context.Context) (*Client, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	if _, err := cli.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to docker daemon: %w", err)
	}

	return &Client{cli: cli}, nil
}

// Close releases the underlying SDK client.
func (c *Client) Close() error {
	return c.cli.Close()
}

// ListRunning returns all currently running containers.
func (c *Client) ListRunning(ctx context.Context) ([]Container, error) {
	list, err := c.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	result := make([]Container, 0, len(list))
	for _, item := range list {
		name := ""
		if len(item.Names) > 0 {
			name = strings.TrimPrefix(item.Names[0], "/")
		}

		result = append(result, Container{
			ID:      item.ID,
			Name:    name,
			Image:   item.Image,
			Labels:  item.Labels,
			State:   item.State,
			Status:  item.Status,
			Created: item.Created,
		})
	}
	return result, nil
}
