package appconfig

import (
	"time"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appcontext"
)

type ConfigSpec struct {
	// DevMode to indicate development mode. When true, logs are emitted at trace level.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TimeZone is the zone used for time labels and the snapshot's updated hour.
	TimeZone string `split_words:"true" default:"Asia/Tokyo"`

	// feeds

	// FeedBaseURL is the base URL every feed path is resolved against.
	FeedBaseURL string `split_words:"true" default:"https://spla3.yuu26.com/api" validate:"required,url"`

	FeedRegularPath   string `split_words:"true" default:"/regular/schedule"`
	FeedOpenPath      string `split_words:"true" default:"/bankara-open/schedule"`
	FeedChallengePath string `split_words:"true" default:"/bankara-challenge/schedule"`
	FeedXPath         string `split_words:"true" default:"/x/schedule"`
	FeedSalmonPath    string `split_words:"true" default:"/coop-grouping/schedule"`
	FeedFestPath      string `split_words:"true" default:"/fest/schedule"`

	// FeedUserAgent is sent with every feed and image request.
	FeedUserAgent string `split_words:"true" default:"Spla3StageBot/1.0"`

	// FeedTimeout bounds a single HTTP request.
	FeedTimeout time.Duration `split_words:"true" default:"10s" validate:"gt=0"`

	// FeedMinEntries is the entry count below which a feed response is considered stale.
	FeedMinEntries int `split_words:"true" default:"5" validate:"gte=1"`

	// FeedRetryAttempts is the number of cache-defeating retries after a short response.
	FeedRetryAttempts uint `split_words:"true" default:"3" validate:"lte=10"`

	// FeedRetryDelay is the fixed delay in-between retries.
	FeedRetryDelay time.Duration `split_words:"true" default:"1s"`

	// assets

	// TemplatePath is the background template of the board.
	TemplatePath string `split_words:"true" default:"spl3_Schedule_Template_ver0.png"`

	// FestTemplatePath is the background template used while a festival is running.
	FestTemplatePath string `split_words:"true" default:"spl3_Schedule_Template_fest.png"`

	// IconDir is the directory icons keyed by name are resolved in.
	IconDir string `split_words:"true" default:"icon"`

	// FontPath is the TrueType/OpenType font used for labels. A bundled
	// fallback face is used when the file cannot be read.
	FontPath string `split_words:"true" default:"GenEiPOPle_v1.0/GenEiPOPle-Bk.ttf"`

	// LayoutPath overrides the embedded layout descriptor.
	LayoutPath string `split_words:"true"`

	// difficulty

	// WeaponRankSource is a file path or http(s) URL of the weapon rating table.
	WeaponRankSource string `split_words:"true" default:"data/weapon_rank.json"`

	DifficultyAverageWeight float64   `split_words:"true" default:"0.6" validate:"gte=0,lte=1"`
	DifficultyMinimumWeight float64   `split_words:"true" default:"0.4" validate:"gte=0,lte=1"`
	DifficultyThresholds    []float64 `split_words:"true" default:"420,380,340,300" validate:"len=4"`

	// sinks

	// S3Bucket enables uploading the image and snapshot when set.
	S3Bucket string `split_words:"true"`

	// S3Prefix is prepended to object keys, with no leading slash and typically a trailing slash.
	S3Prefix string `split_words:"true" default:"spl3/"`

	S3Region string `split_words:"true" default:"ap-northeast-1"`

	// AWSAccessKey and AWSSecretKey are static credentials for the S3 sink.
	// When empty the default AWS credential chain is used.
	AWSAccessKey string `split_words:"true"`
	AWSSecretKey string `split_words:"true"`

	// RedisURL enables storing the latest snapshot in Redis when set. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	RedisURL string `split_words:"true"`

	RedisKeyPrefix string `split_words:"true" default:"spl3:board"`

	// NatsURL enables the snapshot-updated notification when set.
	NatsURL string `split_words:"true"`

	NatsSubject string `split_words:"true" default:"SPL3.snapshot"`

	// observability

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// PushgatewayURL enables pushing run metrics to a Prometheus pushgateway.
	PushgatewayURL string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
