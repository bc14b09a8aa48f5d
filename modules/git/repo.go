// Copyright 2015 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git fetches the craft repository.
package git

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/KDE/craftmaster/modules/log"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CloneRepoOptions options when clone a repository
type CloneRepoOptions struct {
	Branch string
	Depth  int
	// Progress receives the sideband output of the remote, nil discards it
	Progress io.Writer
}

// Clone clones original repository to target path.
func Clone(ctx context.Context, from, to string, opts CloneRepoOptions) error {
	if err := os.MkdirAll(filepath.Dir(to), os.ModePerm); err != nil {
		return err
	}

	cloneOpts := &gogit.CloneOptions{
		URL:      from,
		Depth:    opts.Depth,
		Progress: opts.Progress,
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
	}

	log.Info("Cloning %s (branch %s) into %s", from, opts.Branch, to)
	if _, err := gogit.PlainCloneContext(ctx, to, false, cloneOpts); err != nil {
		return &Error{Op: "clone", Path: from, Err: err}
	}
	return nil
}

// Checkout force checks out revision, a branch, tag or commit hash, in the working tree at repoPath
func Checkout(ctx context.Context, repoPath, revision string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return &Error{Op: "open", Path: repoPath, Err: err}
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return &Error{Op: "rev-parse " + revision, Path: repoPath, Err: err}
	}
	wt, err := repo.Worktree()
	if err != nil {
		return &Error{Op: "worktree", Path: repoPath, Err: err}
	}

	log.Info("Checking out %s (%s) in %s", revision, hash, repoPath)
	if err := wt.Checkout(&gogit.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		return &Error{Op: "checkout " + revision, Path: repoPath, Err: err}
	}
	return nil
}

// HeadCommitID returns the commit checked out at repoPath
func HeadCommitID(repoPath string) (string, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return "", &Error{Op: "open", Path: repoPath, Err: err}
	}
	head, err := repo.Head()
	if err != nil {
		return "", &Error{Op: "rev-parse HEAD", Path: repoPath, Err: err}
	}
	return head.Hash().String(), nil
}
