// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the crowdcheck server.

# Handler Types

Each handler is a struct with store and config dependencies:

  - FeedHandler: the ranked post feed and the about page
  - AuthHandler: login, registration, logout, profile
  - PostHandler: post creation and status updates
  - UpvoteHandler: the JSON upvote endpoint
  - AdminHandler: account listing and admin grants

Handlers are created via constructor functions that accept *store.Store
and Config:

	feedHandler := handlers.NewFeedHandler(st, cfg)

# The Feed

ListPosts in feed.go is the aggregation step everything else feeds:

	posts := handlers.ListPosts(st)

Per resource it fetches the latest status update (falling back to
sentinels when there is none) and the upvote count, then sorts by count
descending. Failures degrade - to an empty feed if resources cannot be
listed, to per-post sentinels otherwise - so the home page never errors.

# Sessions

Guarded handlers read the session with middleware.CurrentUser(r); public
pages peek at the cookie only to render the nav. Forms post
urlencoded bodies; only /upvote speaks JSON.
*/
package handlers
