// Copyright (c) 2026 ReadTrace. All rights reserved.

package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/internal/library/progress"
)

func unify(rows ...progress.PlatformProgress) *progress.UnifiedProgress {
	return progress.Unify("series-1", rows)
}

/*
TestSelectResumeURL_ManualOverride verifies an explicit platform choice beats
stored preferences and recency.
*/
func TestSelectResumeURL_ManualOverride(t *testing.T) {
	unified := unify(
		row(platform.Webtoon, 12, "https://www.webtoons.com/ep-12", base.Add(time.Hour)),
		row(platform.MangaDex, 10, "https://mangadex.org/chapter/10", base),
	)

	prefs := progress.Preferences{PreferredPlatforms: []string{platform.Webtoon}}

	url := progress.SelectResumeURL(unified, prefs, platform.MangaDex)
	assert.Equal(t, "https://mangadex.org/chapter/10", url)
}

/*
TestSelectResumeURL_OverrideWithoutURL verifies an override naming a platform
with no usable link falls through to the rest of the ladder instead of
returning an empty link.
*/
func TestSelectResumeURL_OverrideWithoutURL(t *testing.T) {
	unified := unify(
		row(platform.Webtoon, 12, "https://www.webtoons.com/ep-12", base.Add(time.Hour)),
		row(platform.MangaDex, 10, "", base),
	)

	url := progress.SelectResumeURL(unified, progress.Preferences{}, platform.MangaDex)
	assert.Equal(t, "https://www.webtoons.com/ep-12", url)
}

/*
TestSelectResumeURL_PreferenceBeatsRecency verifies preference order is
priority order: a more preferred platform wins even when another platform
was read more recently.
*/
func TestSelectResumeURL_PreferenceBeatsRecency(t *testing.T) {
	unified := unify(
		row(platform.Webtoon, 12, "https://www.webtoons.com/ep-12", base.Add(time.Hour)),
		row(platform.MangaDex, 10, "https://mangadex.org/chapter/10", base),
	)
	require.Equal(t, platform.Webtoon, unified.Platform)

	prefs := progress.Preferences{PreferredPlatforms: []string{platform.MangaDex, platform.Webtoon}}

	url := progress.SelectResumeURL(unified, prefs, "")
	assert.Equal(t, "https://mangadex.org/chapter/10", url)
}

/*
TestSelectResumeURL_SkipsUnusableWithinStep verifies a preferred platform
without a resume URL is skipped in favor of the next preference, not
resolved to an empty link.
*/
func TestSelectResumeURL_SkipsUnusableWithinStep(t *testing.T) {
	unified := unify(
		row(platform.MangaDex, 10, "", base.Add(time.Hour)),
		row(platform.Tapas, 5, "https://tapas.io/episode/5", base),
	)

	prefs := progress.Preferences{PreferredPlatforms: []string{platform.MangaDex, platform.Tapas}}

	url := progress.SelectResumeURL(unified, prefs, "")
	assert.Equal(t, "https://tapas.io/episode/5", url)
}

/*
TestSelectResumeURL_LastSelected verifies the last manually selected platform
is consulted after the preference list.
*/
func TestSelectResumeURL_LastSelected(t *testing.T) {
	unified := unify(
		row(platform.Webtoon, 12, "https://www.webtoons.com/ep-12", base.Add(time.Hour)),
		row(platform.Tapas, 5, "https://tapas.io/episode/5", base),
	)

	prefs := progress.Preferences{
		PreferredPlatforms:   []string{platform.MangaDex}, // no progress on this one
		LastSelectedPlatform: platform.Tapas,
	}

	url := progress.SelectResumeURL(unified, prefs, "")
	assert.Equal(t, "https://tapas.io/episode/5", url)
}

/*
TestSelectResumeURL_RecencyFallback verifies the most recently updated
platform is used when no preference applies.
*/
func TestSelectResumeURL_RecencyFallback(t *testing.T) {
	unified := unify(
		row(platform.Webtoon, 12, "https://www.webtoons.com/ep-12", base.Add(time.Hour)),
		row(platform.Tapas, 5, "https://tapas.io/episode/5", base),
	)

	url := progress.SelectResumeURL(unified, progress.Preferences{}, "")
	assert.Equal(t, "https://www.webtoons.com/ep-12", url)
}

/*
TestSelectResumeURL_FirstAlternativeFallback verifies the first alternative
with a usable URL is used when the top-level platform has none.
*/
func TestSelectResumeURL_FirstAlternativeFallback(t *testing.T) {
	unified := unify(
		row(platform.Webtoon, 12, "", base.Add(time.Hour)),
		row(platform.MangaDex, 10, "", base),
		row(platform.Tapas, 5, "https://tapas.io/episode/5", base.Add(-time.Hour)),
	)

	url := progress.SelectResumeURL(unified, progress.Preferences{}, "")
	assert.Equal(t, "https://tapas.io/episode/5", url)
}

/*
TestSelectResumeURL_NoUsableURL verifies resolution yields an empty string
when no platform carries a link. This is a normal outcome, not an error.
*/
func TestSelectResumeURL_NoUsableURL(t *testing.T) {
	unified := unify(
		row(platform.Webtoon, 12, "", base),
		row(platform.MangaDex, 10, "", base.Add(time.Hour)),
	)

	assert.Equal(t, "", progress.SelectResumeURL(unified, progress.Preferences{}, ""))
}

/*
TestSelectResumeURL_NilUnified verifies a series with no recorded progress
resolves to an empty link regardless of preferences.
*/
func TestSelectResumeURL_NilUnified(t *testing.T) {
	prefs := progress.Preferences{PreferredPlatforms: []string{platform.Webtoon}}
	assert.Equal(t, "", progress.SelectResumeURL(nil, prefs, platform.Webtoon))
}

/*
TestAvailablePlatforms verifies the platform list is top-level first,
alternatives in order, with duplicates removed.
*/
func TestAvailablePlatforms(t *testing.T) {
	t.Run("nil_unified", func(t *testing.T) {
		assert.Nil(t, progress.AvailablePlatforms(nil))
	})

	t.Run("top_level_first", func(t *testing.T) {
		unified := unify(
			row(platform.Webtoon, 12, "", base),
			row(platform.MangaDex, 10, "", base.Add(time.Hour)),
			row(platform.Tapas, 5, "", base.Add(-time.Hour)),
		)

		platforms := progress.AvailablePlatforms(unified)
		assert.Equal(t, []string{platform.MangaDex, platform.Webtoon, platform.Tapas}, platforms)
	})
}
