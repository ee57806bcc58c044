package execution

import (
	"context"
	"fmt"
	"strings"

	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/validation"
)

// defaultRemoteHost is used when a git-remote step names no host.
const defaultRemoteHost = "github.com"

// executeGitRemote adds or updates a named remote whose URL embeds the
// account and token params. The materialized URL exists only inside this
// call and in the collaborator's argv; everything observable (detail,
// errors, logs) is scrubbed by the redactor before it leaves the
// Executor.
func (e *Executor) executeGitRemote(ctx context.Context, d step.Descriptor, host *HostContext) Outcome {
	remote := d.Param("remote")
	if remote == "" {
		return e.failure(d, fmt.Errorf("%w: %q", ErrMissingParam, "remote"), 0)
	}
	if err := validation.ValidateRemoteName(remote); err != nil {
		return e.failure(d, err, 0)
	}

	repo := d.Param("repo")
	if repo == "" {
		return e.failure(d, fmt.Errorf("%w: %q", ErrMissingParam, "repo"), 0)
	}

	account := d.Param("account")
	if account == "" {
		return e.failure(d, &SecretMissingError{StepID: d.ID().String(), Param: "account"}, 0)
	}
	token := d.Param("token")
	if token == "" {
		return e.failure(d, &SecretMissingError{StepID: d.ID().String(), Param: "token"}, 0)
	}

	hostName := d.Param("host")
	if hostName == "" {
		hostName = defaultRemoteHost
	}

	url := fmt.Sprintf("https://%s:%s@%s/%s", account, token, hostName, strings.TrimPrefix(repo, "/"))

	dir := d.Param("dir")
	if dir == "" {
		dir = host.WorkDir()
	}

	current, exists, err := host.Git().RemoteURL(dir, remote)
	if err != nil {
		return e.failure(d, fmt.Errorf("read remote %s: %w", remote, err), -1)
	}

	if exists && current == url {
		return NewOutcome(d.ID(), StatusSkipped).
			WithDetail(fmt.Sprintf("remote %s already configured", remote))
	}

	var (
		code int
		op   string
	)
	if exists {
		op = "git remote set-url " + remote
		code, err = host.Git().SetRemoteURL(ctx, dir, remote, url)
	} else {
		op = "git remote add " + remote
		code, err = host.Git().AddRemote(ctx, dir, remote, url)
	}
	if err != nil {
		return e.failure(d, fmt.Errorf("%s: %w", op, err), -1)
	}
	if code != 0 {
		return e.failure(d, &HostCommandFailedError{
			Op:       op,
			ExitCode: code,
		}, code)
	}

	return NewOutcome(d.ID(), StatusSuccess).
		WithDetail(fmt.Sprintf("remote %s -> %s", remote, url))
}
