package op

// VariableTable is the variable directory: 115 globals plus the
// four per-routine locals at LocalVarBase. Offsets index into the
// packed 1024-byte record; the layout is chosen for packing
// density and is part of the save-file contract (528 bytes used).
var VariableTable = [...]Variable{
	{ID: 0x000, Type: VarNone, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "NULL"},
	{ID: 0x001, Type: VarUInt32, Off: 0, Shift: 0, Count: 1, Default: 1, Name: "VERSION"},
	{ID: 0x002, Type: VarUInt32, Off: 4, Shift: 0, Count: 1, Default: 0, Name: "PLAY_TIME"},
	{ID: 0x003, Type: VarInt32, Off: 8, Shift: 0, Count: 1, Default: 0, Name: "CARRY_GOLD"},
	{ID: 0x004, Type: VarInt32, Off: 12, Shift: 0, Count: 1, Default: 0, Name: "BANK_GOLD"},
	{ID: 0x005, Type: VarUInt32, Off: 16, Shift: 0, Count: 1, Default: 0, Name: "ADVENTURE_SUM"},
	{ID: 0x006, Type: VarUInt32, Off: 20, Shift: 0, Count: 1, Default: 0, Name: "REQUEST_CLEAR_COUNT"},
	{ID: 0x007, Type: VarUInt16, Off: 24, Shift: 0, Count: 1, Default: 0, Name: "CONDITION"},
	{ID: 0x008, Type: VarUInt16, Off: 26, Shift: 0, Count: 2, Default: 0, Name: "SCENARIO_MAIN"},
	{ID: 0x009, Type: VarUInt16, Off: 30, Shift: 0, Count: 2, Default: 0, Name: "SCENARIO_SIDE"},
	{ID: 0x00A, Type: VarUInt16, Off: 34, Shift: 0, Count: 2, Default: 0, Name: "SCENARIO_SUB1"},
	{ID: 0x00B, Type: VarUInt16, Off: 38, Shift: 0, Count: 2, Default: 0, Name: "SCENARIO_SUB2"},
	{ID: 0x00C, Type: VarUInt16, Off: 42, Shift: 0, Count: 2, Default: 0, Name: "SCENARIO_SELECT"},
	{ID: 0x00D, Type: VarUInt16, Off: 46, Shift: 0, Count: 2, Default: 0, Name: "SCENARIO_MAIN_BACKUP"},
	{ID: 0x00E, Type: VarUInt16, Off: 50, Shift: 0, Count: 1, Default: 0, Name: "GROUND_ENTER"},
	{ID: 0x00F, Type: VarUInt16, Off: 52, Shift: 0, Count: 1, Default: 0, Name: "GROUND_ENTER_LINK"},
	{ID: 0x010, Type: VarUInt16, Off: 54, Shift: 0, Count: 1, Default: 0, Name: "GROUND_GETOUT"},
	{ID: 0x011, Type: VarUInt16, Off: 56, Shift: 0, Count: 1, Default: 0, Name: "GROUND_MAP"},
	{ID: 0x012, Type: VarUInt16, Off: 58, Shift: 0, Count: 1, Default: 0, Name: "GROUND_PLACE"},
	{ID: 0x013, Type: VarUInt16, Off: 60, Shift: 0, Count: 1, Default: 0, Name: "GROUND_START_MODE"},
	{ID: 0x014, Type: VarUInt16, Off: 62, Shift: 0, Count: 1, Default: 0, Name: "DUNGEON_SELECT"},
	{ID: 0x015, Type: VarUInt16, Off: 64, Shift: 0, Count: 1, Default: 0, Name: "DUNGEON_ENTER"},
	{ID: 0x016, Type: VarUInt16, Off: 66, Shift: 0, Count: 1, Default: 0, Name: "DUNGEON_ENTER_MODE"},
	{ID: 0x017, Type: VarUInt16, Off: 68, Shift: 0, Count: 1, Default: 0, Name: "DUNGEON_ENTER_INDEX"},
	{ID: 0x018, Type: VarUInt16, Off: 70, Shift: 0, Count: 1, Default: 0, Name: "DUNGEON_ENTER_FREQUENCY"},
	{ID: 0x019, Type: VarUInt16, Off: 72, Shift: 0, Count: 1, Default: 0, Name: "DUNGEON_RESULT"},
	{ID: 0x01A, Type: VarUInt16, Off: 74, Shift: 0, Count: 8, Default: 0, Name: "DUNGEON_CLEAR_COUNT"},
	{ID: 0x01B, Type: VarUInt16, Off: 90, Shift: 0, Count: 1, Default: 0, Name: "HERO_FIRST_KIND"},
	{ID: 0x01C, Type: VarUInt16, Off: 92, Shift: 0, Count: 1, Default: 0, Name: "HERO_KIND"},
	{ID: 0x01D, Type: VarUInt16, Off: 94, Shift: 0, Count: 1, Default: 0, Name: "PARTNER_FIRST_KIND"},
	{ID: 0x01E, Type: VarUInt16, Off: 96, Shift: 0, Count: 1, Default: 0, Name: "PARTNER_KIND"},
	{ID: 0x01F, Type: VarUInt16, Off: 98, Shift: 0, Count: 4, Default: 0, Name: "GUEST_KIND"},
	{ID: 0x020, Type: VarUInt16, Off: 106, Shift: 0, Count: 4, Default: 0, Name: "TACTICS_FOLLOW"},
	{ID: 0x021, Type: VarUInt16, Off: 114, Shift: 0, Count: 4, Default: 0, Name: "BASE_LEVEL"},
	{ID: 0x022, Type: VarUInt16, Off: 122, Shift: 0, Count: 4, Default: 0, Name: "EVENT_LOCAL_BACKUP"},
	{ID: 0x023, Type: VarUInt16, Off: 130, Shift: 0, Count: 1, Default: 0, Name: "STATION_ITEM_STATIC"},
	{ID: 0x024, Type: VarUInt16, Off: 132, Shift: 0, Count: 1, Default: 0, Name: "STATION_ITEM_TEMP"},
	{ID: 0x025, Type: VarUInt16, Off: 134, Shift: 0, Count: 1, Default: 0, Name: "DELIVER_ITEM_STATIC"},
	{ID: 0x026, Type: VarUInt16, Off: 136, Shift: 0, Count: 1, Default: 0, Name: "DELIVER_ITEM_TEMP"},
	{ID: 0x027, Type: VarUInt16, Off: 138, Shift: 0, Count: 1, Default: 0, Name: "BIT_FUWARANTE_LOCAL"},
	{ID: 0x028, Type: VarInt16, Off: 140, Shift: 0, Count: 1, Default: 0, Name: "LOTTERY_RESULT"},
	{ID: 0x029, Type: VarInt16, Off: 142, Shift: 0, Count: 3, Default: 0, Name: "POSITION_X"},
	{ID: 0x02A, Type: VarInt16, Off: 148, Shift: 0, Count: 3, Default: 0, Name: "POSITION_Y"},
	{ID: 0x02B, Type: VarInt16, Off: 154, Shift: 0, Count: 3, Default: 0, Name: "POSITION_HEIGHT"},
	{ID: 0x02C, Type: VarUInt8, Off: 182, Shift: 0, Count: 3, Default: 0, Name: "POSITION_DIRECTION"},
	{ID: 0x02D, Type: VarUInt8, Off: 185, Shift: 0, Count: 1, Default: 0, Name: "REQUEST_THANKS_RESULT_KIND"},
	{ID: 0x02E, Type: VarUInt8, Off: 186, Shift: 0, Count: 1, Default: 0, Name: "REQUEST_THANKS_RESULT_VARIATION"},
	{ID: 0x02F, Type: VarUInt8, Off: 187, Shift: 0, Count: 1, Default: 0, Name: "EVENT_MAIL_COUNT"},
	{ID: 0x030, Type: VarUInt8, Off: 188, Shift: 0, Count: 1, Default: 0, Name: "LANGUAGE_TYPE"},
	{ID: 0x031, Type: VarUInt8, Off: 189, Shift: 0, Count: 1, Default: 0, Name: "GAME_MODE"},
	{ID: 0x032, Type: VarUInt8, Off: 190, Shift: 0, Count: 1, Default: 0, Name: "EXECUTE_SPECIAL_EPISODE_TYPE"},
	{ID: 0x033, Type: VarUInt8, Off: 191, Shift: 0, Count: 1, Default: 0, Name: "SPECIAL_EPISODE_TYPE"},
	{ID: 0x034, Type: VarUInt8, Off: 192, Shift: 0, Count: 8, Default: 0, Name: "FRIEND_ACTIVE_KIND"},
	{ID: 0x035, Type: VarUInt8, Off: 200, Shift: 0, Count: 1, Default: 0, Name: "WEATHER_KIND"},
	{ID: 0x036, Type: VarUInt8, Off: 201, Shift: 0, Count: 1, Default: 0, Name: "GROUND_MUSIC"},
	{ID: 0x037, Type: VarUInt8, Off: 202, Shift: 0, Count: 1, Default: 0, Name: "GROUND_MUSIC_BACKUP"},
	{ID: 0x038, Type: VarUInt8, Off: 203, Shift: 0, Count: 1, Default: 0, Name: "DISPLAY_LANGUAGE"},
	{ID: 0x039, Type: VarUInt8, Off: 204, Shift: 0, Count: 1, Default: 0, Name: "OPTION_TEXT_SPEED"},
	{ID: 0x03A, Type: VarUInt8, Off: 205, Shift: 0, Count: 1, Default: 0, Name: "OPTION_WINDOW_KIND"},
	{ID: 0x03B, Type: VarUInt8, Off: 206, Shift: 0, Count: 1, Default: 0, Name: "COMPULSORY_SAVE_POINT"},
	{ID: 0x03C, Type: VarUInt8, Off: 207, Shift: 0, Count: 1, Default: 0, Name: "COMPULSORY_SAVE_POINT_SIDE"},
	{ID: 0x03D, Type: VarUInt8, Off: 208, Shift: 0, Count: 1, Default: 0, Name: "TEAM_RANK_EVENT_LEVEL"},
	{ID: 0x03E, Type: VarUInt8, Off: 209, Shift: 0, Count: 1, Default: 0, Name: "PLAY_OLD_GAME"},
	{ID: 0x03F, Type: VarUInt8, Off: 210, Shift: 0, Count: 1, Default: 0, Name: "NOTE_MODIFY_FLAG"},
	{ID: 0x040, Type: VarString, Off: 230, Shift: 0, Count: 10, Default: 0, Name: "TEAM_NAME"},
	{ID: 0x041, Type: VarString, Off: 240, Shift: 0, Count: 10, Default: 0, Name: "HERO_NAME"},
	{ID: 0x042, Type: VarString, Off: 250, Shift: 0, Count: 10, Default: 0, Name: "PARTNER_NAME"},
	{ID: 0x043, Type: VarBit, Off: 260, Shift: 0, Count: 128, Default: 0, Name: "SCENARIO_MAIN_BIT_FLAG"},
	{ID: 0x044, Type: VarBit, Off: 276, Shift: 0, Count: 256, Default: 0, Name: "SCENARIO_TALK_BIT_FLAG"},
	{ID: 0x045, Type: VarBit, Off: 308, Shift: 0, Count: 64, Default: 0, Name: "SCENARIO_SIDE_BIT_FLAG"},
	{ID: 0x046, Type: VarBit, Off: 316, Shift: 0, Count: 64, Default: 0, Name: "SCENARIO_SUB_BIT_FLAG"},
	{ID: 0x047, Type: VarBit, Off: 324, Shift: 0, Count: 8, Default: 0, Name: "SPECIAL_EPISODE_OPEN"},
	{ID: 0x048, Type: VarBit, Off: 325, Shift: 0, Count: 8, Default: 0, Name: "SPECIAL_EPISODE_OPEN_OLD"},
	{ID: 0x049, Type: VarBit, Off: 326, Shift: 0, Count: 8, Default: 0, Name: "SPECIAL_EPISODE_CONQUEST"},
	{ID: 0x04A, Type: VarBit, Off: 327, Shift: 0, Count: 32, Default: 0, Name: "PERFORMANCE_PROGRESS_LIST"},
	{ID: 0x04B, Type: VarBit, Off: 331, Shift: 0, Count: 180, Default: 0, Name: "DUNGEON_OPEN_LIST"},
	{ID: 0x04C, Type: VarBit, Off: 353, Shift: 4, Count: 180, Default: 0, Name: "DUNGEON_ENTER_LIST"},
	{ID: 0x04D, Type: VarBit, Off: 376, Shift: 0, Count: 180, Default: 0, Name: "DUNGEON_ARRIVE_LIST"},
	{ID: 0x04E, Type: VarBit, Off: 398, Shift: 4, Count: 180, Default: 0, Name: "DUNGEON_CONQUEST_LIST"},
	{ID: 0x04F, Type: VarBit, Off: 421, Shift: 0, Count: 180, Default: 0, Name: "DUNGEON_PRESENT_LIST"},
	{ID: 0x050, Type: VarBit, Off: 443, Shift: 4, Count: 180, Default: 0, Name: "DUNGEON_REQUEST_LIST"},
	{ID: 0x051, Type: VarBit, Off: 466, Shift: 0, Count: 40, Default: 0, Name: "WORLD_MAP_MARK_LIST_NORMAL"},
	{ID: 0x052, Type: VarBit, Off: 471, Shift: 0, Count: 40, Default: 0, Name: "WORLD_MAP_MARK_LIST_SPECIAL"},
	{ID: 0x053, Type: VarBit, Off: 476, Shift: 0, Count: 16, Default: 0, Name: "STATION_CLEANING_LIST"},
	{ID: 0x054, Type: VarBit, Off: 478, Shift: 0, Count: 16, Default: 0, Name: "TRAINING_OPEN_LIST"},
	{ID: 0x055, Type: VarBit, Off: 480, Shift: 0, Count: 64, Default: 0, Name: "ITEM_BACKUP"},
	{ID: 0x056, Type: VarBit, Off: 488, Shift: 0, Count: 64, Default: 0, Name: "ITEM_BACKUP_KUREKURE"},
	{ID: 0x057, Type: VarBit, Off: 496, Shift: 0, Count: 64, Default: 0, Name: "ITEM_BACKUP_TAKE"},
	{ID: 0x058, Type: VarBit, Off: 504, Shift: 0, Count: 64, Default: 0, Name: "ITEM_BACKUP_GET"},
	{ID: 0x059, Type: VarBit, Off: 512, Shift: 0, Count: 32, Default: 0, Name: "REQUEST_THANKS_RESULT"},
	{ID: 0x05A, Type: VarBit, Off: 516, Shift: 0, Count: 32, Default: 0, Name: "SUB30_TREASURE_DISCOVER"},
	{ID: 0x05B, Type: VarBit, Off: 520, Shift: 0, Count: 32, Default: 0, Name: "SUB30_SPOT_DISCOVER"},
	{ID: 0x05C, Type: VarBit, Off: 524, Shift: 0, Count: 32, Default: 0, Name: "SUB30_PROJECT_P"},
	{ID: 0x05D, Type: VarUInt8, Off: 211, Shift: 0, Count: 4, Default: 0, Name: "SUB30_SPOT_LEVEL"},
	{ID: 0x05E, Type: VarUInt16, Off: 160, Shift: 0, Count: 1, Default: 0, Name: "CONQUEST_SAVE_COUNTER"},
	{ID: 0x05F, Type: VarUInt16, Off: 162, Shift: 0, Count: 1, Default: 0, Name: "PLAY_OLD_GAME_COUNTER"},
	{ID: 0x060, Type: VarUInt16, Off: 164, Shift: 0, Count: 1, Default: 0, Name: "PARTNER_TALK_KIND"},
	{ID: 0x061, Type: VarUInt16, Off: 166, Shift: 0, Count: 1, Default: 0, Name: "HERO_TALK_KIND"},
	{ID: 0x062, Type: VarUInt16, Off: 168, Shift: 0, Count: 1, Default: 0, Name: "RANDOM_REQUEST_NPC03_KIND"},
	{ID: 0x063, Type: VarUInt8, Off: 215, Shift: 0, Count: 8, Default: 0, Name: "EVENT_DIVIDE_STEP"},
	{ID: 0x064, Type: VarUInt8, Off: 223, Shift: 0, Count: 1, Default: 0, Name: "BALANCE_DEBUG"},
	{ID: 0x065, Type: VarUInt8, Off: 224, Shift: 0, Count: 3, Default: 0, Name: "CRYSTAL_COLOR"},
	{ID: 0x066, Type: VarUInt8, Off: 227, Shift: 0, Count: 1, Default: 0, Name: "ROM_VARIATION"},
	{ID: 0x067, Type: VarSpecial, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "SUM_VARIATION"},
	{ID: 0x068, Type: VarSpecial, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "FRIEND_SUM"},
	{ID: 0x069, Type: VarSpecial, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "UNIT_SUM"},
	{ID: 0x06A, Type: VarSpecial, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "MEMBER_SUM"},
	{ID: 0x06B, Type: VarSpecial, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "LEVEL_AVERAGE"},
	{ID: 0x06C, Type: VarSpecial, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "TIME_MINUTES"},
	{ID: 0x06D, Type: VarUInt16, Off: 170, Shift: 0, Count: 1, Default: 0, Name: "SPECIAL_EPISODE_SELECT"},
	{ID: 0x06E, Type: VarUInt16, Off: 172, Shift: 0, Count: 3, Default: 0, Name: "REQUEST_NPC_KIND"},
	{ID: 0x06F, Type: VarUInt8, Off: 228, Shift: 0, Count: 1, Default: 0, Name: "GROUND_WEATHER_BACKUP"},
	{ID: 0x070, Type: VarUInt8, Off: 229, Shift: 0, Count: 1, Default: 0, Name: "MESSAGE_LOG_OPEN"},
	{ID: 0x071, Type: VarInt16, Off: 178, Shift: 0, Count: 1, Default: 0, Name: "CAMERA_DEFAULT_X"},
	{ID: 0x072, Type: VarInt16, Off: 180, Shift: 0, Count: 1, Default: 0, Name: "CAMERA_DEFAULT_Y"},
	{ID: 0x400, Type: VarUInt16, Off: 0, Shift: 0, Count: 1, Default: 0, Name: "LOCAL0"},
	{ID: 0x401, Type: VarUInt16, Off: 2, Shift: 0, Count: 1, Default: 0, Name: "LOCAL1"},
	{ID: 0x402, Type: VarUInt16, Off: 4, Shift: 0, Count: 1, Default: 0, Name: "LOCAL2"},
	{ID: 0x403, Type: VarUInt16, Off: 6, Shift: 0, Count: 1, Default: 0, Name: "LOCAL3"},
}
