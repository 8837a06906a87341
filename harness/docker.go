package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
)

// DockerClient wraps the Docker SDK client
type DockerClient struct {
	cli *client.Client
}

// NewDockerClient creates a new Docker client from the environment
func NewDockerClient() (*DockerClient, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	return &DockerClient{cli: cli}, nil
}

// Close closes the Docker client
func (d *DockerClient) Close() error {
	return d.cli.Close()
}

// EnsureImage checks if the image exists locally, pulls if not
func (d *DockerClient) EnsureImage(ctx context.Context, imageName string) error {
	_, _, err := d.cli.ImageInspectWithRaw(ctx, imageName)
	if err == nil {
		return nil
	}

	fmt.Printf("  Pulling image %s...\n", imageName)
	reader, err := d.cli.ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image %s: %w", imageName, err)
	}
	defer reader.Close()

	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("failed to pull image %s: %w", imageName, err)
	}
	return nil
}

// ContainerConfig holds configuration for creating a benchmark container
type ContainerConfig struct {
	Image     string
	SourceDir string // Host path mounted read-only at /workspace
	CPUs      int    // 0 = unlimited
	MemoryGB  int    // 0 = unlimited
}

// Container represents a running Docker container
type Container struct {
	ID     string
	client *DockerClient
}

// CreateContainer creates and starts an idle container with the benchmark
// sources mounted at /workspace
func (d *DockerClient) CreateContainer(ctx context.Context, cfg ContainerConfig) (*Container, error) {
	containerCfg := &container.Config{
		Image:      cfg.Image,
		Cmd:        []string{"sleep", "infinity"},
		WorkingDir: "/workspace",
		Tty:        false,
	}

	hostCfg := &container.HostConfig{
		Binds: []string{
			fmt.Sprintf("%s:/workspace:ro", cfg.SourceDir),
		},
	}

	// Optional resource limits keep the comparison fair across languages
	if cfg.CPUs > 0 {
		hostCfg.Resources.NanoCPUs = int64(cfg.CPUs) * 1e9
	}
	if cfg.MemoryGB > 0 {
		memoryBytes := int64(cfg.MemoryGB) * 1024 * 1024 * 1024
		hostCfg.Resources.Memory = memoryBytes
		hostCfg.Resources.MemorySwap = memoryBytes // disable swap
	}

	resp, err := d.cli.ContainerCreate(ctx, containerCfg, hostCfg, nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	if err := d.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		_ = d.cli.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return nil, fmt.Errorf("failed to start container: %w", err)
	}

	return &Container{ID: resp.ID, client: d}, nil
}

// ExecResult holds the result of executing a command in a container
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExecShell executes a shell command in the container and captures its output
func (c *Container) ExecShell(ctx context.Context, command string) (*ExecResult, error) {
	execCfg := container.ExecOptions{
		Cmd:          []string{"bash", "-c", command},
		WorkingDir:   "/workspace",
		AttachStdout: true,
		AttachStderr: true,
	}

	execResp, err := c.client.cli.ContainerExecCreate(ctx, c.ID, execCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create exec: %w", err)
	}

	attachResp, err := c.client.cli.ContainerExecAttach(ctx, execResp.ID, container.ExecStartOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to attach to exec: %w", err)
	}
	defer attachResp.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, attachResp.Reader); err != nil {
		return nil, fmt.Errorf("failed to read exec output: %w", err)
	}

	inspectResp, err := c.client.cli.ContainerExecInspect(ctx, execResp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect exec: %w", err)
	}

	return &ExecResult{
		ExitCode: inspectResp.ExitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Stop stops and removes the container
func (c *Container) Stop(ctx context.Context) error {
	timeout := 10 // seconds
	stopOptions := container.StopOptions{Timeout: &timeout}

	if err := c.client.cli.ContainerStop(ctx, c.ID, stopOptions); err != nil {
		// Container might already be stopped, try to remove anyway
	}

	if err := c.client.cli.ContainerRemove(ctx, c.ID, container.RemoveOptions{Force: true}); err != nil {
		return fmt.Errorf("failed to remove container: %w", err)
	}
	return nil
}
