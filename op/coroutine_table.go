package op

// CommonRoutineTable names every shared subroutine id. Offsets are
// not static: each scene container ships its own coroutine offset
// table keyed by these ids.
var CommonRoutineTable = [...]CommonRoutine{
	{0x000, "EVENT_DIVIDE"},
	{0x001, "EVENT_DIVIDE_NEXT"},
	{0x002, "EVENT_WAIT"},
	{0x003, "EVENT_END_FREE"},
	{0x004, "EVENT_END_MAPIN"},
	{0x005, "EVENT_FORMATION"},
	{0x006, "EVENT_EVOLUTION"},
	{0x007, "TALK_MAIN"},
	{0x008, "TALK_SUB"},
	{0x009, "TALK_UNIT"},
	{0x00A, "TALK_PARTNER"},
	{0x00B, "TALK_PATRASHE"},
	{0x00C, "BUBBLE_TEST"},
	{0x00D, "BUBBLE_SURPRISE"},
	{0x00E, "BUBBLE_NOTICE"},
	{0x00F, "BUBBLE_QUESTION"},
	{0x010, "GETOUT_NORMAL"},
	{0x011, "GETOUT_DUNGEON"},
	{0x012, "GETOUT_SCENARIO"},
	{0x013, "WAKEUP_EVENT"},
	{0x014, "WAKEUP_EVENT_AFTER"},
	{0x015, "MOVE_INIT"},
	{0x016, "MOVE_STATION"},
	{0x017, "LOOK_AROUND"},
	{0x018, "LOOK_AROUND_FAST"},
	{0x019, "LOOK_AROUND_LEFT"},
	{0x01A, "LOOK_AROUND_RIGHT"},
	{0x01B, "WATCH_AROUND"},
	{0x01C, "TURN_HERO"},
	{0x01D, "TURN_PARTNER"},
	{0x01E, "STOP_WATCH"},
	{0x01F, "SHOP_MAIN"},
	{0x020, "SHOP_BANK"},
	{0x021, "SHOP_STORAGE"},
	{0x022, "SHOP_DOJO"},
	{0x023, "SHOP_APPRAISE"},
	{0x024, "SHOP_EXCHANGE"},
	{0x025, "STATION_MAIN"},
	{0x026, "STATION_CLEANING"},
	{0x027, "DEMO_OPENING"},
	{0x028, "DEMO_ENDING"},
	{0x029, "DEMO_STAFFROLL"},
	{0x02A, "DEMO_RECAP"},
	{0x02B, "MAP_TEST"},
	{0x02C, "MAP_STATION"},
	{0x02D, "MESSAGE_CLOSE_WAIT_FUNC"},
	{0x02E, "SUSPEND_LOOP"},
	{0x02F, "LIVES_REPLY"},
	{0x030, "LIVES_REPLY_NORMAL"},
	{0x031, "OBJECT_REPLY"},
	{0x032, "PERFORMER_REPLY"},
	{0x033, "ENTER_HERO"},
	{0x034, "ENTER_PARTNER"},
	{0x035, "ENTER_GUEST"},
	{0x036, "LEAVE_HERO"},
	{0x037, "LEAVE_PARTNER"},
	{0x038, "LEAVE_GUEST"},
	{0x039, "RESCUE_SET"},
	{0x03A, "RESCUE_CLEAR"},
	{0x03B, "TRAINING_ENTER"},
	{0x03C, "TRAINING_LEAVE"},
	{0x03D, "BUBBLE_IDLE_00"},
	{0x03E, "BUBBLE_IDLE_01"},
	{0x03F, "BUBBLE_IDLE_02"},
	{0x040, "BUBBLE_IDLE_03"},
	{0x041, "BUBBLE_IDLE_04"},
	{0x042, "BUBBLE_IDLE_05"},
	{0x043, "BUBBLE_IDLE_06"},
	{0x044, "BUBBLE_IDLE_07"},
	{0x045, "BUBBLE_IDLE_08"},
	{0x046, "BUBBLE_IDLE_09"},
	{0x047, "DEMO_CUT_00"},
	{0x048, "DEMO_CUT_01"},
	{0x049, "DEMO_CUT_02"},
	{0x04A, "DEMO_CUT_03"},
	{0x04B, "DEMO_CUT_04"},
	{0x04C, "DEMO_CUT_05"},
	{0x04D, "DEMO_CUT_06"},
	{0x04E, "DEMO_CUT_07"},
	{0x04F, "DEMO_CUT_08"},
	{0x050, "DEMO_CUT_09"},
	{0x051, "DEMO_CUT_10"},
	{0x052, "DEMO_CUT_11"},
	{0x053, "DEMO_CUT_12"},
	{0x054, "DEMO_CUT_13"},
	{0x055, "DEMO_CUT_14"},
	{0x056, "DEMO_CUT_15"},
	{0x057, "DEMO_CUT_16"},
	{0x058, "DEMO_CUT_17"},
	{0x059, "DEMO_CUT_18"},
	{0x05A, "DEMO_CUT_19"},
	{0x05B, "STATION_ACT_00"},
	{0x05C, "STATION_ACT_01"},
	{0x05D, "STATION_ACT_02"},
	{0x05E, "STATION_ACT_03"},
	{0x05F, "STATION_ACT_04"},
	{0x060, "STATION_ACT_05"},
	{0x061, "STATION_ACT_06"},
	{0x062, "STATION_ACT_07"},
	{0x063, "STATION_ACT_08"},
	{0x064, "STATION_ACT_09"},
	{0x065, "STATION_ACT_10"},
	{0x066, "STATION_ACT_11"},
	{0x067, "STATION_ACT_12"},
	{0x068, "STATION_ACT_13"},
	{0x069, "STATION_ACT_14"},
	{0x06A, "STATION_ACT_15"},
	{0x06B, "STATION_ACT_16"},
	{0x06C, "STATION_ACT_17"},
	{0x06D, "STATION_ACT_18"},
	{0x06E, "STATION_ACT_19"},
	{0x06F, "STATION_ACT_20"},
	{0x070, "STATION_ACT_21"},
	{0x071, "STATION_ACT_22"},
	{0x072, "STATION_ACT_23"},
	{0x073, "STATION_ACT_24"},
	{0x074, "STATION_ACT_25"},
	{0x075, "STATION_ACT_26"},
	{0x076, "STATION_ACT_27"},
	{0x077, "STATION_ACT_28"},
	{0x078, "STATION_ACT_29"},
	{0x079, "GETOUT_ACT_00"},
	{0x07A, "GETOUT_ACT_01"},
	{0x07B, "GETOUT_ACT_02"},
	{0x07C, "GETOUT_ACT_03"},
	{0x07D, "GETOUT_ACT_04"},
	{0x07E, "GETOUT_ACT_05"},
	{0x07F, "GETOUT_ACT_06"},
	{0x080, "GETOUT_ACT_07"},
	{0x081, "GETOUT_ACT_08"},
	{0x082, "GETOUT_ACT_09"},
	{0x083, "GETOUT_ACT_10"},
	{0x084, "GETOUT_ACT_11"},
	{0x085, "GETOUT_ACT_12"},
	{0x086, "GETOUT_ACT_13"},
	{0x087, "GETOUT_ACT_14"},
	{0x088, "GETOUT_ACT_15"},
	{0x089, "GETOUT_ACT_16"},
	{0x08A, "GETOUT_ACT_17"},
	{0x08B, "GETOUT_ACT_18"},
	{0x08C, "GETOUT_ACT_19"},
	{0x08D, "VISIT_00"},
	{0x08E, "VISIT_01"},
	{0x08F, "VISIT_02"},
	{0x090, "VISIT_03"},
	{0x091, "VISIT_04"},
	{0x092, "VISIT_05"},
	{0x093, "VISIT_06"},
	{0x094, "VISIT_07"},
	{0x095, "VISIT_08"},
	{0x096, "VISIT_09"},
	{0x097, "VISIT_10"},
	{0x098, "VISIT_11"},
	{0x099, "VISIT_12"},
	{0x09A, "VISIT_13"},
	{0x09B, "VISIT_14"},
	{0x09C, "VISIT_15"},
	{0x09D, "VISIT_16"},
	{0x09E, "VISIT_17"},
	{0x09F, "VISIT_18"},
	{0x0A0, "VISIT_19"},
	{0x0A1, "TALK_M01_000"},
	{0x0A2, "EVENT_M01_000"},
	{0x0A3, "SCENE_M01_000"},
	{0x0A4, "TALK_M01_001"},
	{0x0A5, "EVENT_M01_001"},
	{0x0A6, "SCENE_M01_001"},
	{0x0A7, "TALK_M01_002"},
	{0x0A8, "EVENT_M01_002"},
	{0x0A9, "SCENE_M01_002"},
	{0x0AA, "TALK_M01_003"},
	{0x0AB, "EVENT_M01_003"},
	{0x0AC, "SCENE_M01_003"},
	{0x0AD, "TALK_M01_004"},
	{0x0AE, "EVENT_M01_004"},
	{0x0AF, "SCENE_M01_004"},
	{0x0B0, "TALK_M01_005"},
	{0x0B1, "EVENT_M01_005"},
	{0x0B2, "SCENE_M01_005"},
	{0x0B3, "TALK_M01_006"},
	{0x0B4, "EVENT_M01_006"},
	{0x0B5, "SCENE_M01_006"},
	{0x0B6, "TALK_M01_007"},
	{0x0B7, "EVENT_M01_007"},
	{0x0B8, "SCENE_M01_007"},
	{0x0B9, "TALK_M01_008"},
	{0x0BA, "EVENT_M01_008"},
	{0x0BB, "SCENE_M01_008"},
	{0x0BC, "TALK_M01_009"},
	{0x0BD, "EVENT_M01_009"},
	{0x0BE, "SCENE_M01_009"},
	{0x0BF, "TALK_M01_010"},
	{0x0C0, "EVENT_M01_010"},
	{0x0C1, "SCENE_M01_010"},
	{0x0C2, "TALK_M01_011"},
	{0x0C3, "EVENT_M01_011"},
	{0x0C4, "SCENE_M01_011"},
	{0x0C5, "TALK_M01_012"},
	{0x0C6, "EVENT_M01_012"},
	{0x0C7, "SCENE_M01_012"},
	{0x0C8, "TALK_M01_013"},
	{0x0C9, "EVENT_M01_013"},
	{0x0CA, "SCENE_M01_013"},
	{0x0CB, "TALK_M01_014"},
	{0x0CC, "EVENT_M01_014"},
	{0x0CD, "SCENE_M01_014"},
	{0x0CE, "TALK_M01_015"},
	{0x0CF, "EVENT_M01_015"},
	{0x0D0, "SCENE_M01_015"},
	{0x0D1, "TALK_M01_016"},
	{0x0D2, "EVENT_M01_016"},
	{0x0D3, "SCENE_M01_016"},
	{0x0D4, "TALK_M01_017"},
	{0x0D5, "EVENT_M01_017"},
	{0x0D6, "SCENE_M01_017"},
	{0x0D7, "TALK_M01_018"},
	{0x0D8, "EVENT_M01_018"},
	{0x0D9, "SCENE_M01_018"},
	{0x0DA, "TALK_M01_019"},
	{0x0DB, "EVENT_M01_019"},
	{0x0DC, "SCENE_M01_019"},
	{0x0DD, "TALK_M01_020"},
	{0x0DE, "EVENT_M01_020"},
	{0x0DF, "SCENE_M01_020"},
	{0x0E0, "TALK_M01_021"},
	{0x0E1, "EVENT_M01_021"},
	{0x0E2, "SCENE_M01_021"},
	{0x0E3, "TALK_M01_022"},
	{0x0E4, "EVENT_M01_022"},
	{0x0E5, "SCENE_M01_022"},
	{0x0E6, "TALK_M01_023"},
	{0x0E7, "EVENT_M01_023"},
	{0x0E8, "SCENE_M01_023"},
	{0x0E9, "TALK_M01_024"},
	{0x0EA, "EVENT_M01_024"},
	{0x0EB, "SCENE_M01_024"},
	{0x0EC, "TALK_M01_025"},
	{0x0ED, "EVENT_M01_025"},
	{0x0EE, "SCENE_M01_025"},
	{0x0EF, "TALK_M01_026"},
	{0x0F0, "EVENT_M01_026"},
	{0x0F1, "SCENE_M01_026"},
	{0x0F2, "TALK_M01_027"},
	{0x0F3, "EVENT_M01_027"},
	{0x0F4, "SCENE_M01_027"},
	{0x0F5, "TALK_M01_028"},
	{0x0F6, "EVENT_M01_028"},
	{0x0F7, "SCENE_M01_028"},
	{0x0F8, "TALK_M01_029"},
	{0x0F9, "EVENT_M01_029"},
	{0x0FA, "SCENE_M01_029"},
	{0x0FB, "TALK_M01_030"},
	{0x0FC, "EVENT_M01_030"},
	{0x0FD, "SCENE_M01_030"},
	{0x0FE, "TALK_M01_031"},
	{0x0FF, "EVENT_M01_031"},
	{0x100, "SCENE_M01_031"},
	{0x101, "TALK_M01_032"},
	{0x102, "EVENT_M01_032"},
	{0x103, "SCENE_M01_032"},
	{0x104, "TALK_M01_033"},
	{0x105, "EVENT_M01_033"},
	{0x106, "SCENE_M01_033"},
	{0x107, "TALK_M01_034"},
	{0x108, "EVENT_M01_034"},
	{0x109, "SCENE_M01_034"},
	{0x10A, "TALK_M01_035"},
	{0x10B, "EVENT_M01_035"},
	{0x10C, "SCENE_M01_035"},
	{0x10D, "TALK_M01_036"},
	{0x10E, "EVENT_M01_036"},
	{0x10F, "SCENE_M01_036"},
	{0x110, "TALK_M01_037"},
	{0x111, "EVENT_M01_037"},
	{0x112, "SCENE_M01_037"},
	{0x113, "TALK_M01_038"},
	{0x114, "EVENT_M01_038"},
	{0x115, "SCENE_M01_038"},
	{0x116, "TALK_M01_039"},
	{0x117, "EVENT_M01_039"},
	{0x118, "SCENE_M01_039"},
	{0x119, "TALK_M02_040"},
	{0x11A, "EVENT_M02_040"},
	{0x11B, "SCENE_M02_040"},
	{0x11C, "TALK_M02_041"},
	{0x11D, "EVENT_M02_041"},
	{0x11E, "SCENE_M02_041"},
	{0x11F, "TALK_M02_042"},
	{0x120, "EVENT_M02_042"},
	{0x121, "SCENE_M02_042"},
	{0x122, "TALK_M02_043"},
	{0x123, "EVENT_M02_043"},
	{0x124, "SCENE_M02_043"},
	{0x125, "TALK_M02_044"},
	{0x126, "EVENT_M02_044"},
	{0x127, "SCENE_M02_044"},
	{0x128, "TALK_M02_045"},
	{0x129, "EVENT_M02_045"},
	{0x12A, "SCENE_M02_045"},
	{0x12B, "TALK_M02_046"},
	{0x12C, "EVENT_M02_046"},
	{0x12D, "SCENE_M02_046"},
	{0x12E, "TALK_M02_047"},
	{0x12F, "EVENT_M02_047"},
	{0x130, "SCENE_M02_047"},
	{0x131, "TALK_M02_048"},
	{0x132, "EVENT_M02_048"},
	{0x133, "SCENE_M02_048"},
	{0x134, "TALK_M02_049"},
	{0x135, "EVENT_M02_049"},
	{0x136, "SCENE_M02_049"},
	{0x137, "TALK_M02_050"},
	{0x138, "EVENT_M02_050"},
	{0x139, "SCENE_M02_050"},
	{0x13A, "TALK_M02_051"},
	{0x13B, "EVENT_M02_051"},
	{0x13C, "SCENE_M02_051"},
	{0x13D, "TALK_M02_052"},
	{0x13E, "EVENT_M02_052"},
	{0x13F, "SCENE_M02_052"},
	{0x140, "TALK_M02_053"},
	{0x141, "EVENT_M02_053"},
	{0x142, "SCENE_M02_053"},
	{0x143, "TALK_M02_054"},
	{0x144, "EVENT_M02_054"},
	{0x145, "SCENE_M02_054"},
	{0x146, "TALK_M02_055"},
	{0x147, "EVENT_M02_055"},
	{0x148, "SCENE_M02_055"},
	{0x149, "TALK_M02_056"},
	{0x14A, "EVENT_M02_056"},
	{0x14B, "SCENE_M02_056"},
	{0x14C, "TALK_M02_057"},
	{0x14D, "EVENT_M02_057"},
	{0x14E, "SCENE_M02_057"},
	{0x14F, "TALK_M02_058"},
	{0x150, "EVENT_M02_058"},
	{0x151, "SCENE_M02_058"},
	{0x152, "TALK_M02_059"},
	{0x153, "EVENT_M02_059"},
	{0x154, "SCENE_M02_059"},
	{0x155, "TALK_M02_060"},
	{0x156, "EVENT_M02_060"},
	{0x157, "SCENE_M02_060"},
	{0x158, "TALK_M02_061"},
	{0x159, "EVENT_M02_061"},
	{0x15A, "SCENE_M02_061"},
	{0x15B, "TALK_M02_062"},
	{0x15C, "EVENT_M02_062"},
	{0x15D, "SCENE_M02_062"},
	{0x15E, "TALK_M02_063"},
	{0x15F, "EVENT_M02_063"},
	{0x160, "SCENE_M02_063"},
	{0x161, "TALK_M02_064"},
	{0x162, "EVENT_M02_064"},
	{0x163, "SCENE_M02_064"},
	{0x164, "TALK_M02_065"},
	{0x165, "EVENT_M02_065"},
	{0x166, "SCENE_M02_065"},
	{0x167, "TALK_M02_066"},
	{0x168, "EVENT_M02_066"},
	{0x169, "SCENE_M02_066"},
	{0x16A, "TALK_M02_067"},
	{0x16B, "EVENT_M02_067"},
	{0x16C, "SCENE_M02_067"},
	{0x16D, "TALK_M02_068"},
	{0x16E, "EVENT_M02_068"},
	{0x16F, "SCENE_M02_068"},
	{0x170, "TALK_M02_069"},
	{0x171, "EVENT_M02_069"},
	{0x172, "SCENE_M02_069"},
	{0x173, "TALK_M02_070"},
	{0x174, "EVENT_M02_070"},
	{0x175, "SCENE_M02_070"},
	{0x176, "TALK_M02_071"},
	{0x177, "EVENT_M02_071"},
	{0x178, "SCENE_M02_071"},
	{0x179, "TALK_M02_072"},
	{0x17A, "EVENT_M02_072"},
	{0x17B, "SCENE_M02_072"},
	{0x17C, "TALK_M02_073"},
	{0x17D, "EVENT_M02_073"},
	{0x17E, "SCENE_M02_073"},
	{0x17F, "TALK_M02_074"},
	{0x180, "EVENT_M02_074"},
	{0x181, "SCENE_M02_074"},
	{0x182, "TALK_M02_075"},
	{0x183, "EVENT_M02_075"},
	{0x184, "SCENE_M02_075"},
	{0x185, "TALK_M02_076"},
	{0x186, "EVENT_M02_076"},
	{0x187, "SCENE_M02_076"},
	{0x188, "TALK_M02_077"},
	{0x189, "EVENT_M02_077"},
	{0x18A, "SCENE_M02_077"},
	{0x18B, "TALK_M02_078"},
	{0x18C, "EVENT_M02_078"},
	{0x18D, "SCENE_M02_078"},
	{0x18E, "TALK_M02_079"},
	{0x18F, "EVENT_M02_079"},
	{0x190, "SCENE_M02_079"},
	{0x191, "TALK_M03_080"},
	{0x192, "EVENT_M03_080"},
	{0x193, "SCENE_M03_080"},
	{0x194, "TALK_M03_081"},
	{0x195, "EVENT_M03_081"},
	{0x196, "SCENE_M03_081"},
	{0x197, "TALK_M03_082"},
	{0x198, "EVENT_M03_082"},
	{0x199, "SCENE_M03_082"},
	{0x19A, "TALK_M03_083"},
	{0x19B, "EVENT_M03_083"},
	{0x19C, "SCENE_M03_083"},
	{0x19D, "TALK_M03_084"},
	{0x19E, "EVENT_M03_084"},
	{0x19F, "SCENE_M03_084"},
	{0x1A0, "TALK_M03_085"},
	{0x1A1, "EVENT_M03_085"},
	{0x1A2, "SCENE_M03_085"},
	{0x1A3, "TALK_M03_086"},
	{0x1A4, "EVENT_M03_086"},
	{0x1A5, "SCENE_M03_086"},
	{0x1A6, "TALK_M03_087"},
	{0x1A7, "EVENT_M03_087"},
	{0x1A8, "SCENE_M03_087"},
	{0x1A9, "TALK_M03_088"},
	{0x1AA, "EVENT_M03_088"},
	{0x1AB, "SCENE_M03_088"},
	{0x1AC, "TALK_M03_089"},
	{0x1AD, "EVENT_M03_089"},
	{0x1AE, "SCENE_M03_089"},
	{0x1AF, "TALK_M03_090"},
	{0x1B0, "EVENT_M03_090"},
	{0x1B1, "SCENE_M03_090"},
	{0x1B2, "TALK_M03_091"},
	{0x1B3, "EVENT_M03_091"},
	{0x1B4, "SCENE_M03_091"},
	{0x1B5, "TALK_M03_092"},
	{0x1B6, "EVENT_M03_092"},
	{0x1B7, "SCENE_M03_092"},
	{0x1B8, "TALK_M03_093"},
	{0x1B9, "EVENT_M03_093"},
	{0x1BA, "SCENE_M03_093"},
	{0x1BB, "TALK_M03_094"},
	{0x1BC, "EVENT_M03_094"},
	{0x1BD, "SCENE_M03_094"},
	{0x1BE, "TALK_M03_095"},
	{0x1BF, "EVENT_M03_095"},
	{0x1C0, "SCENE_M03_095"},
	{0x1C1, "TALK_M03_096"},
	{0x1C2, "EVENT_M03_096"},
	{0x1C3, "SCENE_M03_096"},
	{0x1C4, "TALK_M03_097"},
	{0x1C5, "EVENT_M03_097"},
	{0x1C6, "SCENE_M03_097"},
	{0x1C7, "TALK_M03_098"},
	{0x1C8, "EVENT_M03_098"},
	{0x1C9, "SCENE_M03_098"},
	{0x1CA, "TALK_M03_099"},
	{0x1CB, "EVENT_M03_099"},
	{0x1CC, "SCENE_M03_099"},
	{0x1CD, "TALK_M03_100"},
	{0x1CE, "EVENT_M03_100"},
	{0x1CF, "SCENE_M03_100"},
	{0x1D0, "TALK_M03_101"},
	{0x1D1, "EVENT_M03_101"},
	{0x1D2, "SCENE_M03_101"},
	{0x1D3, "TALK_M03_102"},
	{0x1D4, "EVENT_M03_102"},
	{0x1D5, "SCENE_M03_102"},
	{0x1D6, "TALK_M03_103"},
	{0x1D7, "EVENT_M03_103"},
	{0x1D8, "SCENE_M03_103"},
	{0x1D9, "TALK_M03_104"},
	{0x1DA, "EVENT_M03_104"},
	{0x1DB, "SCENE_M03_104"},
	{0x1DC, "TALK_M03_105"},
	{0x1DD, "EVENT_M03_105"},
	{0x1DE, "SCENE_M03_105"},
	{0x1DF, "TALK_M03_106"},
	{0x1E0, "EVENT_M03_106"},
	{0x1E1, "SCENE_M03_106"},
	{0x1E2, "TALK_M03_107"},
	{0x1E3, "EVENT_M03_107"},
	{0x1E4, "SCENE_M03_107"},
	{0x1E5, "TALK_M03_108"},
	{0x1E6, "EVENT_M03_108"},
	{0x1E7, "SCENE_M03_108"},
	{0x1E8, "TALK_M03_109"},
	{0x1E9, "EVENT_M03_109"},
	{0x1EA, "SCENE_M03_109"},
	{0x1EB, "TALK_M03_110"},
	{0x1EC, "EVENT_M03_110"},
	{0x1ED, "SCENE_M03_110"},
	{0x1EE, "TALK_M03_111"},
	{0x1EF, "EVENT_M03_111"},
	{0x1F0, "SCENE_M03_111"},
	{0x1F1, "TALK_M03_112"},
	{0x1F2, "EVENT_M03_112"},
	{0x1F3, "SCENE_M03_112"},
	{0x1F4, "TALK_M03_113"},
	{0x1F5, "EVENT_M03_113"},
	{0x1F6, "SCENE_M03_113"},
	{0x1F7, "TALK_M03_114"},
	{0x1F8, "EVENT_M03_114"},
	{0x1F9, "SCENE_M03_114"},
	{0x1FA, "TALK_M03_115"},
	{0x1FB, "EVENT_M03_115"},
	{0x1FC, "SCENE_M03_115"},
	{0x1FD, "TALK_M03_116"},
	{0x1FE, "EVENT_M03_116"},
	{0x1FF, "SCENE_M03_116"},
	{0x200, "TALK_M03_117"},
	{0x201, "EVENT_M03_117"},
	{0x202, "SCENE_M03_117"},
	{0x203, "TALK_M03_118"},
	{0x204, "EVENT_M03_118"},
	{0x205, "SCENE_M03_118"},
	{0x206, "TALK_M03_119"},
	{0x207, "EVENT_M03_119"},
	{0x208, "SCENE_M03_119"},
	{0x209, "TALK_M04_120"},
	{0x20A, "EVENT_M04_120"},
	{0x20B, "SCENE_M04_120"},
	{0x20C, "TALK_M04_121"},
	{0x20D, "EVENT_M04_121"},
	{0x20E, "SCENE_M04_121"},
	{0x20F, "TALK_M04_122"},
	{0x210, "EVENT_M04_122"},
	{0x211, "SCENE_M04_122"},
	{0x212, "TALK_M04_123"},
	{0x213, "EVENT_M04_123"},
	{0x214, "SCENE_M04_123"},
	{0x215, "TALK_M04_124"},
	{0x216, "EVENT_M04_124"},
	{0x217, "SCENE_M04_124"},
	{0x218, "TALK_M04_125"},
	{0x219, "EVENT_M04_125"},
	{0x21A, "SCENE_M04_125"},
	{0x21B, "TALK_M04_126"},
	{0x21C, "EVENT_M04_126"},
	{0x21D, "SCENE_M04_126"},
	{0x21E, "TALK_M04_127"},
	{0x21F, "EVENT_M04_127"},
	{0x220, "SCENE_M04_127"},
	{0x221, "TALK_M04_128"},
	{0x222, "EVENT_M04_128"},
	{0x223, "SCENE_M04_128"},
	{0x224, "TALK_M04_129"},
	{0x225, "EVENT_M04_129"},
	{0x226, "SCENE_M04_129"},
	{0x227, "TALK_M04_130"},
	{0x228, "EVENT_M04_130"},
	{0x229, "SCENE_M04_130"},
	{0x22A, "TALK_M04_131"},
	{0x22B, "EVENT_M04_131"},
	{0x22C, "SCENE_M04_131"},
	{0x22D, "TALK_M04_132"},
	{0x22E, "EVENT_M04_132"},
	{0x22F, "SCENE_M04_132"},
	{0x230, "TALK_M04_133"},
	{0x231, "EVENT_M04_133"},
	{0x232, "SCENE_M04_133"},
	{0x233, "TALK_M04_134"},
	{0x234, "EVENT_M04_134"},
	{0x235, "SCENE_M04_134"},
	{0x236, "TALK_M04_135"},
	{0x237, "EVENT_M04_135"},
	{0x238, "SCENE_M04_135"},
	{0x239, "TALK_M04_136"},
	{0x23A, "EVENT_M04_136"},
	{0x23B, "SCENE_M04_136"},
	{0x23C, "TALK_M04_137"},
	{0x23D, "EVENT_M04_137"},
	{0x23E, "SCENE_M04_137"},
	{0x23F, "TALK_M04_138"},
	{0x240, "EVENT_M04_138"},
	{0x241, "SCENE_M04_138"},
	{0x242, "TALK_M04_139"},
	{0x243, "EVENT_M04_139"},
	{0x244, "SCENE_M04_139"},
	{0x245, "TALK_M04_140"},
	{0x246, "EVENT_M04_140"},
	{0x247, "SCENE_M04_140"},
	{0x248, "TALK_M04_141"},
	{0x249, "EVENT_M04_141"},
	{0x24A, "SCENE_M04_141"},
	{0x24B, "TALK_M04_142"},
	{0x24C, "EVENT_M04_142"},
	{0x24D, "SCENE_M04_142"},
	{0x24E, "TALK_M04_143"},
	{0x24F, "EVENT_M04_143"},
	{0x250, "SCENE_M04_143"},
	{0x251, "TALK_M04_144"},
	{0x252, "EVENT_M04_144"},
	{0x253, "SCENE_M04_144"},
	{0x254, "TALK_M04_145"},
	{0x255, "EVENT_M04_145"},
	{0x256, "SCENE_M04_145"},
	{0x257, "TALK_M04_146"},
	{0x258, "EVENT_M04_146"},
	{0x259, "SCENE_M04_146"},
	{0x25A, "TALK_M04_147"},
	{0x25B, "EVENT_M04_147"},
	{0x25C, "SCENE_M04_147"},
	{0x25D, "TALK_M04_148"},
	{0x25E, "EVENT_M04_148"},
	{0x25F, "SCENE_M04_148"},
	{0x260, "TALK_M04_149"},
	{0x261, "EVENT_M04_149"},
	{0x262, "SCENE_M04_149"},
	{0x263, "TALK_M04_150"},
	{0x264, "EVENT_M04_150"},
	{0x265, "SCENE_M04_150"},
	{0x266, "TALK_M04_151"},
	{0x267, "EVENT_M04_151"},
	{0x268, "SCENE_M04_151"},
	{0x269, "TALK_M04_152"},
	{0x26A, "EVENT_M04_152"},
	{0x26B, "SCENE_M04_152"},
	{0x26C, "TALK_M04_153"},
	{0x26D, "EVENT_M04_153"},
	{0x26E, "SCENE_M04_153"},
	{0x26F, "TALK_M04_154"},
	{0x270, "EVENT_M04_154"},
	{0x271, "SCENE_M04_154"},
	{0x272, "TALK_M04_155"},
	{0x273, "EVENT_M04_155"},
	{0x274, "SCENE_M04_155"},
	{0x275, "TALK_M04_156"},
	{0x276, "EVENT_M04_156"},
	{0x277, "SCENE_M04_156"},
	{0x278, "TALK_M04_157"},
	{0x279, "EVENT_M04_157"},
	{0x27A, "SCENE_M04_157"},
	{0x27B, "TALK_M04_158"},
	{0x27C, "EVENT_M04_158"},
	{0x27D, "SCENE_M04_158"},
	{0x27E, "TALK_M04_159"},
	{0x27F, "EVENT_M04_159"},
	{0x280, "SCENE_M04_159"},
	{0x281, "TALK_M05_160"},
	{0x282, "EVENT_M05_160"},
	{0x283, "SCENE_M05_160"},
	{0x284, "TALK_M05_161"},
	{0x285, "EVENT_M05_161"},
	{0x286, "SCENE_M05_161"},
	{0x287, "TALK_M05_162"},
	{0x288, "EVENT_M05_162"},
	{0x289, "SCENE_M05_162"},
	{0x28A, "TALK_M05_163"},
	{0x28B, "EVENT_M05_163"},
	{0x28C, "SCENE_M05_163"},
	{0x28D, "TALK_M05_164"},
	{0x28E, "EVENT_M05_164"},
	{0x28F, "SCENE_M05_164"},
	{0x290, "TALK_M05_165"},
	{0x291, "EVENT_M05_165"},
	{0x292, "SCENE_M05_165"},
	{0x293, "TALK_M05_166"},
	{0x294, "EVENT_M05_166"},
	{0x295, "SCENE_M05_166"},
	{0x296, "TALK_M05_167"},
	{0x297, "EVENT_M05_167"},
	{0x298, "SCENE_M05_167"},
	{0x299, "TALK_M05_168"},
	{0x29A, "EVENT_M05_168"},
	{0x29B, "SCENE_M05_168"},
	{0x29C, "TALK_M05_169"},
	{0x29D, "EVENT_M05_169"},
	{0x29E, "SCENE_M05_169"},
	{0x29F, "TALK_M05_170"},
	{0x2A0, "EVENT_M05_170"},
	{0x2A1, "SCENE_M05_170"},
	{0x2A2, "TALK_M05_171"},
	{0x2A3, "EVENT_M05_171"},
	{0x2A4, "SCENE_M05_171"},
	{0x2A5, "TALK_M05_172"},
	{0x2A6, "EVENT_M05_172"},
	{0x2A7, "SCENE_M05_172"},
	{0x2A8, "TALK_M05_173"},
	{0x2A9, "EVENT_M05_173"},
	{0x2AA, "SCENE_M05_173"},
	{0x2AB, "TALK_M05_174"},
	{0x2AC, "EVENT_M05_174"},
	{0x2AD, "SCENE_M05_174"},
	{0x2AE, "TALK_M05_175"},
	{0x2AF, "EVENT_M05_175"},
	{0x2B0, "SCENE_M05_175"},
	{0x2B1, "TALK_M05_176"},
	{0x2B2, "EVENT_M05_176"},
	{0x2B3, "SCENE_M05_176"},
	{0x2B4, "TALK_M05_177"},
	{0x2B5, "EVENT_M05_177"},
	{0x2B6, "SCENE_M05_177"},
	{0x2B7, "TALK_M05_178"},
	{0x2B8, "EVENT_M05_178"},
	{0x2B9, "SCENE_M05_178"},
	{0x2BA, "TALK_M05_179"},
	{0x2BB, "EVENT_M05_179"},
	{0x2BC, "SCENE_M05_179"},
}
